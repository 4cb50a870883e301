// file: internals/features/kurikulum/controller/catalog_controller.go
package controller

import (
	"strconv"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/dto"
	"kurikulum_backend/internals/features/kurikulum/service"
	helper "kurikulum_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =======================================================
   CONTROLLER (endpoint publik, read-only)
   ======================================================= */

type CatalogController struct {
	DB          *gorm.DB
	PageSize    int
	MaxPageSize int
}

func NewCatalogController(db *gorm.DB, pageSize, maxPageSize int) *CatalogController {
	return &CatalogController{DB: db, PageSize: pageSize, MaxPageSize: maxPageSize}
}

// GET /curriculum-overview?kurikulum_id=&fase_id=&jenjang_id=&search=&page=&page_size=
// jenjang_id = id Kelas.
func (h *CatalogController) CurriculumOverview(c *fiber.Ctx) error {
	var (
		f   = service.OverviewFilter{Search: strings.TrimSpace(c.Query("search"))}
		err error
	)
	if f.KurikulumID, err = queryID(c, "kurikulum_id"); err != nil {
		return err
	}
	if f.FaseID, err = queryID(c, "fase_id"); err != nil {
		return err
	}
	if f.KelasID, err = queryID(c, "jenjang_id"); err != nil {
		return err
	}

	pageReq, err := helper.ParsePageRequest(c, h.PageSize, h.MaxPageSize)
	if err != nil {
		return err
	}

	rows, err := service.CurriculumOverview(c.UserContext(), h.DB, f)
	if err != nil {
		return err
	}

	page, err := helper.NewPageEnvelope(c, rows, pageReq)
	if err != nil {
		return err
	}
	results := make([]dto.OverviewRowResponse, 0, len(page.Results))
	for _, r := range page.Results {
		results = append(results, dto.FromOverviewRow(r.Element, r.Tujuan, r.Materi))
	}
	return c.JSON(helper.PageEnvelope[dto.OverviewRowResponse]{
		Count:    page.Count,
		Next:     page.Next,
		Previous: page.Previous,
		Results:  results,
	})
}

// GET /filter-options?kurikulum_id=
// id bukan angka diperlakukan sama dengan kurikulum yang tidak ada.
func (h *CatalogController) FilterOptions(c *fiber.Ctx) error {
	var kurikulumID *uint
	if raw := strings.TrimSpace(c.Query("kurikulum_id")); raw != "" {
		id := uint(0)
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			id = uint(n)
		}
		kurikulumID = &id
	}

	opts, err := service.LoadFilterOptions(c.UserContext(), h.DB, kurikulumID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FilterOptionsResponse{
		Kurikulums: dto.KurikulumChoices(opts.Kurikulums),
		Fases:      dto.FaseResponses(opts.Fases),
	})
}

// GET /materi-items?materi_id=
func (h *CatalogController) MateriItems(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("materi_id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id wajib diisi")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id harus berupa angka")
	}

	items, err := service.ListMateriItems(c.UserContext(), h.DB, uint(id))
	if service.IsNotFound(err) {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.MateriItemResponses(items))
}

/* ---------- choices (non-paginated) ---------- */

func (h *CatalogController) KurikulumChoices(c *fiber.Ctx) error {
	rows, err := service.ListKurikulumChoices(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(dto.KurikulumChoices(rows))
}

func (h *CatalogController) KelasChoices(c *fiber.Ctx) error {
	rows, err := service.ListKelasChoices(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(dto.KelasChoices(rows))
}

func (h *CatalogController) FaseChoices(c *fiber.Ctx) error {
	rows, err := service.ListFaseChoices(c.UserContext(), h.DB)
	if err != nil {
		return err
	}
	return c.JSON(dto.FaseChoices(rows))
}

// queryID: kosong → nil; bukan angka → 400.
func queryID(c *fiber.Ctx, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" harus berupa angka")
	}
	id := uint(n)
	return &id, nil
}
