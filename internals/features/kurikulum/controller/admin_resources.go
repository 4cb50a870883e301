// file: internals/features/kurikulum/controller/admin_resources.go
package controller

import (
	"strconv"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/dto"
	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/service"
	"kurikulum_backend/internals/features/kurikulum/transfer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =======================================================
   Konfigurasi admin per entity
   search & list display mengikuti admin lama
   ======================================================= */

func NewKurikulumAdmin(db *gorm.DB) *AdminResource[model.KurikulumModel, dto.KurikulumRequest] {
	return &AdminResource[model.KurikulumModel, dto.KurikulumRequest]{
		DB:         db,
		Label:      "Kurikulum",
		Transfer:   transfer.Kurikulum,
		SearchCols: []string{"kurikulums.kurikulum_nama", "kurikulums.kurikulum_kode"},
		OrderCols: map[string]string{
			"id":         "kurikulums.kurikulum_id",
			"nama":       "kurikulums.kurikulum_nama",
			"kode":       "kurikulums.kurikulum_kode",
			"created_at": "kurikulums.kurikulum_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Fases"},
		ID:           func(m *model.KurikulumModel) uint { return m.KurikulumID },
		Present:      func(m *model.KurikulumModel) any { return dto.FromKurikulumDetail(m) },
		Delete:       service.DeleteKurikulum,
	}
}

func NewFaseAdmin(db *gorm.DB) *AdminResource[model.FaseModel, dto.FaseRequest] {
	return &AdminResource[model.FaseModel, dto.FaseRequest]{
		DB:         db,
		Label:      "Fase",
		Transfer:   transfer.Fase,
		SearchCols: []string{"fases.fase_nama"},
		OrderCols: map[string]string{
			"id":         "fases.fase_id",
			"fase":       "fases.fase_nama",
			"created_at": "fases.fase_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Kelas"},
		ID:           func(m *model.FaseModel) uint { return m.FaseID },
		Present:      func(m *model.FaseModel) any { return dto.FromFaseDetail(m) },
		Delete:       service.DeleteFase,
	}
}

func NewKelasAdmin(db *gorm.DB) *AdminResource[model.KelasModel, dto.KelasRequest] {
	return &AdminResource[model.KelasModel, dto.KelasRequest]{
		DB:         db,
		Label:      "Kelas",
		Transfer:   transfer.Kelas,
		SearchCols: []string{"kelas.kelas_label", "kelas.kelas_jenjang"},
		OrderCols: map[string]string{
			"id":         "kelas.kelas_id",
			"kelas":      "kelas.kelas_label",
			"jenjang":    "kelas.kelas_jenjang",
			"created_at": "kelas.kelas_created_at",
		},
		DefaultOrder: "created_at",
		Filters: func(c *fiber.Ctx) ([]func(*gorm.DB) *gorm.DB, error) {
			j := strings.ToUpper(strings.TrimSpace(c.Query("jenjang")))
			if j == "" {
				return nil, nil
			}
			if !model.Jenjang(j).Valid() {
				return nil, fiber.NewError(fiber.StatusBadRequest, "jenjang tidak valid")
			}
			return []func(*gorm.DB) *gorm.DB{func(q *gorm.DB) *gorm.DB {
				return q.Where("kelas.kelas_jenjang = ?", j)
			}}, nil
		},
		ID:      func(m *model.KelasModel) uint { return m.KelasID },
		Present: func(m *model.KelasModel) any { return dto.FromKelasDetail(m) },
		Delete:  service.DeleteKelas,
	}
}

func NewElementAdmin(db *gorm.DB) *AdminResource[model.ElementModel, dto.ElementRequest] {
	return &AdminResource[model.ElementModel, dto.ElementRequest]{
		DB:       db,
		Label:    "Element",
		Transfer: transfer.Element,
		SearchCols: []string{
			"elements.element_nama",
			"elements.element_deskripsi",
			"(SELECT k.kurikulum_nama FROM kurikulums k WHERE k.kurikulum_id = elements.element_kurikulum_id)",
		},
		OrderCols: map[string]string{
			"id":         "elements.element_id",
			"nama":       "elements.element_nama",
			"created_at": "elements.element_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Kurikulum"},
		Filters:      eqFilters(map[string]string{"kurikulum_id": "elements.element_kurikulum_id"}),
		ID:           func(m *model.ElementModel) uint { return m.ElementID },
		Present:      func(m *model.ElementModel) any { return dto.FromElementDetail(m) },
		Delete:       service.DeleteElement,
	}
}

func NewTujuanAdmin(db *gorm.DB) *AdminResource[model.TujuanPembelajaranModel, dto.TujuanRequest] {
	return &AdminResource[model.TujuanPembelajaranModel, dto.TujuanRequest]{
		DB:       db,
		Label:    "Tujuan pembelajaran",
		Transfer: transfer.TujuanPembelajaran,
		SearchCols: []string{
			"tujuan_pembelajarans.tujuan_nama",
			"(SELECT k.kurikulum_nama FROM kurikulums k WHERE k.kurikulum_id = tujuan_pembelajarans.tujuan_kurikulum_id)",
		},
		OrderCols: map[string]string{
			"id":          "tujuan_pembelajarans.tujuan_id",
			"nama":        "tujuan_pembelajarans.tujuan_nama",
			"flow_number": "tujuan_pembelajarans.tujuan_flow_number",
			"created_at":  "tujuan_pembelajarans.tujuan_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Kurikulum"},
		Filters:      eqFilters(map[string]string{"kurikulum_id": "tujuan_pembelajarans.tujuan_kurikulum_id"}),
		ID:           func(m *model.TujuanPembelajaranModel) uint { return m.TujuanID },
		Present:      func(m *model.TujuanPembelajaranModel) any { return dto.FromTujuanDetail(m) },
		Delete:       service.DeleteTujuan,
	}
}

func NewMateriAdmin(db *gorm.DB) *AdminResource[model.MateriModel, dto.MateriRequest] {
	return &AdminResource[model.MateriModel, dto.MateriRequest]{
		DB:       db,
		Label:    "Materi",
		Transfer: transfer.Materi,
		SearchCols: []string{
			"materis.materi_nama",
			"(SELECT kl.kelas_label FROM kelas kl WHERE kl.kelas_id = materis.materi_kelas_id)",
			"(SELECT f.fase_nama FROM fases f WHERE f.fase_id = materis.materi_fase_id)",
		},
		OrderCols: map[string]string{
			"id":         "materis.materi_id",
			"nama":       "materis.materi_nama",
			"jumlah_jam": "materis.materi_jumlah_jam",
			"created_at": "materis.materi_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Kurikulum", "Fase", "Fase.Kelas", "Kelas", "TujuanPembelajaran"},
		Filters: eqFilters(map[string]string{
			"kurikulum_id": "materis.materi_kurikulum_id",
			"fase_id":      "materis.materi_fase_id",
			"kelas_id":     "materis.materi_kelas_id",
		}),
		ID: func(m *model.MateriModel) uint { return m.MateriID },
		Present: func(m *model.MateriModel) any {
			service.SortTujuan(m.TujuanPembelajaran)
			return dto.FromMateriDetail(m)
		},
		Delete: service.DeleteMateri,
	}
}

func NewMateriItemAdmin(db *gorm.DB) *AdminResource[model.MateriItemModel, dto.MateriItemRequest] {
	byMateri := eqFilters(map[string]string{"materi_id": "materi_items.materi_item_materi_id"})
	return &AdminResource[model.MateriItemModel, dto.MateriItemRequest]{
		DB:       db,
		Label:    "Materi item",
		Transfer: transfer.MateriItem,
		SearchCols: []string{
			"materi_items.materi_item_nama",
			"materi_items.materi_item_deskripsi",
			"(SELECT m.materi_nama FROM materis m WHERE m.materi_id = materi_items.materi_item_materi_id)",
		},
		OrderCols: map[string]string{
			"id":         "materi_items.materi_item_id",
			"nama":       "materi_items.materi_item_nama",
			"qc_approve": "materi_items.materi_item_qc_approve",
			"created_at": "materi_items.materi_item_created_at",
		},
		DefaultOrder: "created_at",
		Preloads:     []string{"Materi", "Videos"},
		Filters: func(c *fiber.Ctx) ([]func(*gorm.DB) *gorm.DB, error) {
			scopes, err := byMateri(c)
			if err != nil {
				return nil, err
			}
			raw := strings.TrimSpace(c.Query("qc_approve"))
			if raw == "" {
				return scopes, nil
			}
			qc, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "qc_approve harus true/false")
			}
			return append(scopes, func(q *gorm.DB) *gorm.DB {
				return q.Where("materi_items.materi_item_qc_approve = ?", qc)
			}), nil
		},
		ID:      func(m *model.MateriItemModel) uint { return m.MateriItemID },
		Present: func(m *model.MateriItemModel) any { return dto.FromMateriItemDetail(m) },
		Delete:  service.DeleteMateriItem,
	}
}

func NewMateriItemVideoAdmin(db *gorm.DB) *AdminResource[model.MateriItemVideoModel, dto.VideoRequest] {
	return &AdminResource[model.MateriItemVideoModel, dto.VideoRequest]{
		DB:       db,
		Label:    "Video",
		Transfer: transfer.MateriItemVideo,
		SearchCols: []string{
			"materi_item_videos.video_path",
			"(SELECT i.materi_item_nama FROM materi_items i WHERE i.materi_item_id = materi_item_videos.video_materi_item_id)",
		},
		OrderCols: map[string]string{
			"id":         "materi_item_videos.video_id",
			"video":      "materi_item_videos.video_path",
			"created_at": "materi_item_videos.video_created_at",
		},
		DefaultOrder: "created_at",
		Filters:      eqFilters(map[string]string{"materi_item_id": "materi_item_videos.video_materi_item_id"}),
		ID:           func(m *model.MateriItemVideoModel) uint { return m.VideoID },
		Present:      func(m *model.MateriItemVideoModel) any { return dto.FromVideoDetail(m) },
		Delete:       service.DeleteMateriItemVideo,
	}
}

// eqFilters: ?param=<id> → WHERE kolom = id. Bukan angka → 400.
func eqFilters(params map[string]string) func(c *fiber.Ctx) ([]func(*gorm.DB) *gorm.DB, error) {
	return func(c *fiber.Ctx) ([]func(*gorm.DB) *gorm.DB, error) {
		var scopes []func(*gorm.DB) *gorm.DB
		for param, col := range params {
			id, err := queryID(c, param)
			if err != nil {
				return nil, err
			}
			if id == nil {
				continue
			}
			col, v := col, *id
			scopes = append(scopes, func(q *gorm.DB) *gorm.DB { return q.Where(col+" = ?", v) })
		}
		return scopes, nil
	}
}
