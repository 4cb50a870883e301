// file: internals/features/kurikulum/transfer/resources.go
package transfer

import (
	"strconv"

	"kurikulum_backend/internals/features/kurikulum/dto"
	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/service"
)

/* =========================================================
   Definisi CSV per entity. Kolom many2many = id dipisah ";".
   ========================================================= */

var Kurikulum = Resource[model.KurikulumModel, dto.KurikulumRequest]{
	Name:     "kurikulum",
	PK:       "kurikulum_id",
	Header:   []string{"id", "nama", "kode", "referensi", "fase_ids", "created_at"},
	Preloads: []string{"Fases"},
	Encode: func(m *model.KurikulumModel) []string {
		ids := make([]uint, 0, len(m.Fases))
		for _, f := range m.Fases {
			ids = append(ids, f.FaseID)
		}
		return []string{
			uintCell(m.KurikulumID), m.KurikulumNama, m.KurikulumKode,
			optStringCell(m.KurikulumReferensi), idsCell(ids), timeCell(m.KurikulumCreatedAt),
		}
	},
	Decode: func(r Row) (dto.KurikulumRequest, error) {
		req := dto.KurikulumRequest{
			Nama:      optString(r, "nama"),
			Kode:      optString(r, "kode"),
			Referensi: patchString(r, "referensi"),
		}
		var err error
		req.FaseIDs, err = idList(r, "fase_ids")
		return req, err
	},
	Save: service.SaveKurikulum,
}

var Fase = Resource[model.FaseModel, dto.FaseRequest]{
	Name:   "fase",
	PK:     "fase_id",
	Header: []string{"id", "fase", "deskripsi", "kelas_id", "created_at"},
	Encode: func(m *model.FaseModel) []string {
		return []string{
			uintCell(m.FaseID), m.FaseNama, optStringCell(m.FaseDeskripsi),
			optUintCell(m.FaseKelasID), timeCell(m.FaseCreatedAt),
		}
	},
	Decode: func(r Row) (dto.FaseRequest, error) {
		req := dto.FaseRequest{
			Fase:      optString(r, "fase"),
			Deskripsi: patchString(r, "deskripsi"),
		}
		var err error
		req.KelasID, err = patchUint(r, "kelas_id")
		return req, err
	},
	Save: service.SaveFase,
}

var Kelas = Resource[model.KelasModel, dto.KelasRequest]{
	Name:   "kelas",
	PK:     "kelas_id",
	Header: []string{"id", "kelas", "jenjang", "created_at"},
	Encode: func(m *model.KelasModel) []string {
		return []string{uintCell(m.KelasID), m.KelasLabel, string(m.KelasJenjang), timeCell(m.KelasCreatedAt)}
	},
	Decode: func(r Row) (dto.KelasRequest, error) {
		return dto.KelasRequest{Kelas: optString(r, "kelas"), Jenjang: optString(r, "jenjang")}, nil
	},
	Save: service.SaveKelas,
}

var Element = Resource[model.ElementModel, dto.ElementRequest]{
	Name:   "element",
	PK:     "element_id",
	Header: []string{"id", "nama", "deskripsi", "kurikulum_id", "created_at"},
	Encode: func(m *model.ElementModel) []string {
		return []string{
			uintCell(m.ElementID), m.ElementNama, optStringCell(m.ElementDeskripsi),
			optUintCell(m.ElementKurikulumID), timeCell(m.ElementCreatedAt),
		}
	},
	Decode: func(r Row) (dto.ElementRequest, error) {
		req := dto.ElementRequest{Nama: optString(r, "nama"), Deskripsi: patchString(r, "deskripsi")}
		var err error
		req.KurikulumID, err = patchUint(r, "kurikulum_id")
		return req, err
	},
	Save: service.SaveElement,
}

var TujuanPembelajaran = Resource[model.TujuanPembelajaranModel, dto.TujuanRequest]{
	Name:   "tujuan_pembelajaran",
	PK:     "tujuan_id",
	Header: []string{"id", "nama", "flow_number", "kurikulum_id", "created_at"},
	Encode: func(m *model.TujuanPembelajaranModel) []string {
		return []string{
			uintCell(m.TujuanID), m.TujuanNama, m.TujuanFlowNumber,
			optUintCell(m.TujuanKurikulumID), timeCell(m.TujuanCreatedAt),
		}
	},
	Decode: func(r Row) (dto.TujuanRequest, error) {
		req := dto.TujuanRequest{Nama: optString(r, "nama"), FlowNumber: optString(r, "flow_number")}
		var err error
		req.KurikulumID, err = patchUint(r, "kurikulum_id")
		return req, err
	},
	Save: service.SaveTujuan,
}

var Materi = Resource[model.MateriModel, dto.MateriRequest]{
	Name: "materi",
	PK:   "materi_id",
	Header: []string{
		"id", "nama", "kurikulum_id", "fase_id", "kelas_id", "bahasa_pemrograman",
		"jumlah_jam", "rpp", "tujuan_pembelajaran_ids", "created_at",
	},
	Preloads: []string{"TujuanPembelajaran"},
	Encode: func(m *model.MateriModel) []string {
		ids := make([]uint, 0, len(m.TujuanPembelajaran))
		for _, tp := range m.TujuanPembelajaran {
			ids = append(ids, tp.TujuanID)
		}
		return []string{
			uintCell(m.MateriID), m.MateriNama,
			optUintCell(m.MateriKurikulumID), optUintCell(m.MateriFaseID), optUintCell(m.MateriKelasID),
			string(m.MateriBahasaPemrograman), strconv.Itoa(m.MateriJumlahJam),
			optStringCell(m.MateriRPP), idsCell(ids), timeCell(m.MateriCreatedAt),
		}
	},
	Decode: func(r Row) (dto.MateriRequest, error) {
		req := dto.MateriRequest{
			Nama:              optString(r, "nama"),
			BahasaPemrograman: optString(r, "bahasa_pemrograman"),
			RPP:               patchString(r, "rpp"),
		}
		var err error
		if req.KurikulumID, err = patchUint(r, "kurikulum_id"); err != nil {
			return req, err
		}
		if req.FaseID, err = patchUint(r, "fase_id"); err != nil {
			return req, err
		}
		if req.KelasID, err = patchUint(r, "kelas_id"); err != nil {
			return req, err
		}
		if req.JumlahJam, err = optInt(r, "jumlah_jam"); err != nil {
			return req, err
		}
		req.TujuanIDs, err = idList(r, "tujuan_pembelajaran_ids")
		return req, err
	},
	Save: service.SaveMateri,
}

var MateriItem = Resource[model.MateriItemModel, dto.MateriItemRequest]{
	Name: "materi_item",
	PK:   "materi_item_id",
	Header: []string{
		"id", "materi_id", "qc_approve", "nama", "deskripsi", "module_qc", "module_qc_pdf", "created_at",
	},
	Encode: func(m *model.MateriItemModel) []string {
		qc := "false"
		if m.MateriItemQCApprove {
			qc = "true"
		}
		return []string{
			uintCell(m.MateriItemID), optUintCell(m.MateriItemMateriID), qc, m.MateriItemNama,
			optStringCell(m.MateriItemDeskripsi), optStringCell(m.MateriItemModuleQC),
			optStringCell(m.MateriItemModuleQCPDF), timeCell(m.MateriItemCreatedAt),
		}
	},
	Decode: func(r Row) (dto.MateriItemRequest, error) {
		req := dto.MateriItemRequest{
			Nama:        optString(r, "nama"),
			Deskripsi:   patchString(r, "deskripsi"),
			ModuleQC:    patchString(r, "module_qc"),
			ModuleQCPDF: patchString(r, "module_qc_pdf"),
		}
		var err error
		if req.MateriID, err = patchUint(r, "materi_id"); err != nil {
			return req, err
		}
		req.QCApprove, err = optBool(r, "qc_approve")
		return req, err
	},
	Save: service.SaveMateriItem,
}

var MateriItemVideo = Resource[model.MateriItemVideoModel, dto.VideoRequest]{
	Name:   "materi_item_video",
	PK:     "video_id",
	Header: []string{"id", "materi_item_id", "video", "created_at"},
	Encode: func(m *model.MateriItemVideoModel) []string {
		return []string{
			uintCell(m.VideoID), optUintCell(m.VideoMateriItemID),
			optStringCell(m.VideoPath), timeCell(m.VideoCreatedAt),
		}
	},
	Decode: func(r Row) (dto.VideoRequest, error) {
		req := dto.VideoRequest{Video: patchString(r, "video")}
		var err error
		req.MateriItemID, err = patchUint(r, "materi_item_id")
		return req, err
	},
	Save: service.SaveMateriItemVideo,
}
