// file: internals/features/kurikulum/controller/admin_controller.go
package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/service"
	"kurikulum_backend/internals/features/kurikulum/transfer"
	helper "kurikulum_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =======================================================
   ADMIN RESOURCE (CRUD + import/export CSV)
   Satu tipe generik dipakai semua entity; bedanya hanya di konfigurasi.
   ======================================================= */

type AdminResource[M any, R any] struct {
	DB       *gorm.DB
	Label    string // untuk pesan response
	Transfer transfer.Resource[M, R]

	SearchCols   []string
	OrderCols    map[string]string
	DefaultOrder string
	Preloads     []string

	// Filters: query param tambahan (mis. qc_approve). Boleh nil.
	Filters func(c *fiber.Ctx) ([]func(*gorm.DB) *gorm.DB, error)
	ID      func(m *M) uint
	Present func(m *M) any
	Delete  func(ctx context.Context, db *gorm.DB, id uint) error
}

// GET /
func (h *AdminResource[M, R]) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, h.DefaultOrder, "asc", helper.AdminOpts)

	var scopes []func(*gorm.DB) *gorm.DB
	if h.Filters != nil {
		var err error
		if scopes, err = h.Filters(c); err != nil {
			return err
		}
	}

	rows, total, err := service.List[M](c.UserContext(), h.DB, service.ListQuery{
		PK:         h.Transfer.PK,
		Search:     c.Query("q"),
		SearchCols: h.SearchCols,
		Order:      p.OrderExpr(h.OrderCols, h.DefaultOrder) + ", " + h.Transfer.PK + " ASC",
		Limit:      p.Limit(),
		Offset:     p.Offset(),
		Preloads:   h.Preloads,
		Scopes:     scopes,
	})
	if err != nil {
		return err
	}

	data := make([]any, 0, len(rows))
	for i := range rows {
		data = append(data, h.Present(&rows[i]))
	}
	return helper.JsonList(c, "Daftar "+h.Label, data, helper.BuildMeta(total, p, len(data)))
}

// GET /:id
func (h *AdminResource[M, R]) Detail(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	m, err := h.load(c.UserContext(), h.DB, id)
	if err != nil {
		return h.notFound(err)
	}
	return helper.JsonOK(c, "Detail "+h.Label, h.Present(m))
}

// POST /
func (h *AdminResource[M, R]) Create(c *fiber.Ctx) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	var out *M
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		m := new(M)
		if err := h.Transfer.Save(c.UserContext(), tx, m, req, true); err != nil {
			return err
		}
		var err error
		out, err = h.load(c.UserContext(), tx, h.ID(m))
		return err
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, h.Label+" berhasil dibuat", h.Present(out))
}

// PUT|PATCH /:id (partial): field yang tidak dikirim tidak diubah.
func (h *AdminResource[M, R]) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req R
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	var out *M
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		m, err := service.GetByID[M](c.UserContext(), tx, h.Transfer.PK, id)
		if err != nil {
			return h.notFound(err)
		}
		if err := h.Transfer.Save(c.UserContext(), tx, m, req, false); err != nil {
			return err
		}
		out, err = h.load(c.UserContext(), tx, id)
		return err
	})
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, h.Label+" berhasil diperbarui", h.Present(out))
}

// DELETE /:id (cascade)
func (h *AdminResource[M, R]) Remove(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Delete(c.UserContext(), h.DB, id); err != nil {
		return h.notFound(err)
	}
	return helper.JsonDeleted(c, h.Label+" berhasil dihapus", fiber.Map{"id": id})
}

// GET /export → text/csv
func (h *AdminResource[M, R]) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if _, err := h.Transfer.Export(c.UserContext(), h.DB, &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.Transfer.Name+`.csv"`)
	return c.Send(buf.Bytes())
}

// POST /import?dry_run=true, body CSV mentah atau multipart field "file".
func (h *AdminResource[M, R]) Import(c *fiber.Ctx) error {
	body, err := csvBody(c)
	if err != nil {
		return err
	}
	rows, err := transfer.ReadCSV(body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dryRun := c.QueryBool("dry_run", false)
	report, err := h.Transfer.Import(c.UserContext(), h.DB, rows, dryRun)
	if err != nil {
		return err
	}
	if report.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":    false,
			"message":    "Import gagal, tidak ada data yang disimpan",
			"error_code": "IMPORT_FAILED",
			"data":       report,
		})
	}
	msg := "Import " + h.Label + " berhasil"
	if dryRun {
		msg = "Dry run " + h.Label + " berhasil, tidak ada data yang disimpan"
	}
	return helper.JsonOK(c, msg, report)
}

/* ---------- internal ---------- */

func (h *AdminResource[M, R]) load(ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	return service.GetByID[M](ctx, db, h.Transfer.PK, id, h.Preloads...)
}

func (h *AdminResource[M, R]) notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, h.Label+" tidak ditemukan")
	}
	return err
}

func pathID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id harus berupa angka")
	}
	return uint(n), nil
}

func csvBody(c *fiber.Ctx) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "field file wajib diisi")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "file tidak bisa dibaca")
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "file tidak bisa dibaca")
		}
		return bytes.NewReader(b), nil
	}
	if len(c.Body()) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "body CSV kosong")
	}
	return bytes.NewReader(c.Body()), nil
}
