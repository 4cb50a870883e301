// file: internals/features/kurikulum/dto/overview_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

type ElementResponse struct {
	ID        uint             `json:"id"`
	Nama      string           `json:"nama"`
	Deskripsi *string          `json:"deskripsi"`
	Kurikulum *KurikulumChoice `json:"kurikulum"`
}

type TujuanResponse struct {
	ID         uint   `json:"id"`
	Nama       string `json:"nama"`
	FlowNumber string `json:"flow_number"`
}

type MateriResponse struct {
	ID                 uint             `json:"id"`
	Nama               string           `json:"nama"`
	RPP                *string          `json:"rpp"`
	BahasaPemrograman  string           `json:"bahasa_pemrograman"`
	JumlahJam          int              `json:"jumlah_jam"`
	Kurikulum          *KurikulumChoice `json:"kurikulum"`
	Fase               *FaseResponse    `json:"fase"`
	TujuanPembelajaran []TujuanResponse `json:"tujuan_pembelajaran"`
	Kelas              *KelasChoice     `json:"kelas"`
}

// OverviewRowResponse: satu baris GET /curriculum-overview
type OverviewRowResponse struct {
	Element            *ElementResponse `json:"element"`
	TujuanPembelajaran TujuanResponse   `json:"tujuan_pembelajaran"`
	Materi             MateriResponse   `json:"materi"`
}

type VideoResponse struct {
	ID    uint    `json:"id"`
	Video *string `json:"video"`
}

type MateriItemResponse struct {
	ID          uint            `json:"id"`
	Nama        string          `json:"nama"`
	Deskripsi   *string         `json:"deskripsi"`
	QCApprove   bool            `json:"qc_approve"`
	ModuleQC    *string         `json:"module_qc"`
	ModuleQCPDF *string         `json:"module_qc_pdf"`
	Videos      []VideoResponse `json:"videos"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromElementResponse(m *model.ElementModel) *ElementResponse {
	if m == nil {
		return nil
	}
	return &ElementResponse{
		ID:        m.ElementID,
		Nama:      m.ElementNama,
		Deskripsi: m.ElementDeskripsi,
		Kurikulum: FromKurikulumChoice(m.Kurikulum),
	}
}

func FromTujuanResponse(m *model.TujuanPembelajaranModel) TujuanResponse {
	return TujuanResponse{ID: m.TujuanID, Nama: m.TujuanNama, FlowNumber: m.TujuanFlowNumber}
}

func FromMateriResponse(m *model.MateriModel) MateriResponse {
	tps := make([]TujuanResponse, 0, len(m.TujuanPembelajaran))
	for i := range m.TujuanPembelajaran {
		tps = append(tps, FromTujuanResponse(&m.TujuanPembelajaran[i]))
	}
	return MateriResponse{
		ID:                 m.MateriID,
		Nama:               m.MateriNama,
		RPP:                helper.MediaURL(m.MateriRPP),
		BahasaPemrograman:  string(m.MateriBahasaPemrograman),
		JumlahJam:          m.MateriJumlahJam,
		Kurikulum:          FromKurikulumChoice(m.Kurikulum),
		Fase:               FromFaseResponse(m.Fase),
		TujuanPembelajaran: tps,
		Kelas:              FromKelasChoice(m.Kelas),
	}
}

func FromVideoResponse(m *model.MateriItemVideoModel) VideoResponse {
	return VideoResponse{ID: m.VideoID, Video: helper.MediaURL(m.VideoPath)}
}

func FromMateriItemResponse(m *model.MateriItemModel) MateriItemResponse {
	videos := make([]VideoResponse, 0, len(m.Videos))
	for i := range m.Videos {
		videos = append(videos, FromVideoResponse(&m.Videos[i]))
	}
	return MateriItemResponse{
		ID:          m.MateriItemID,
		Nama:        m.MateriItemNama,
		Deskripsi:   m.MateriItemDeskripsi,
		QCApprove:   m.MateriItemQCApprove,
		ModuleQC:    helper.MediaURL(m.MateriItemModuleQC),
		ModuleQCPDF: helper.MediaURL(m.MateriItemModuleQCPDF),
		Videos:      videos,
		CreatedAt:   m.MateriItemCreatedAt,
	}
}

func MateriItemResponses(rows []model.MateriItemModel) []MateriItemResponse {
	out := make([]MateriItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromMateriItemResponse(&rows[i]))
	}
	return out
}

// FromOverviewRow: element ikut membawa kurikulum milik materi (sudah di-preload).
func FromOverviewRow(el *model.ElementModel, tp *model.TujuanPembelajaranModel, m *model.MateriModel) OverviewRowResponse {
	var elResp *ElementResponse
	if el != nil {
		elResp = FromElementResponse(el)
		if elResp.Kurikulum == nil {
			elResp.Kurikulum = FromKurikulumChoice(m.Kurikulum)
		}
	}
	return OverviewRowResponse{
		Element:            elResp,
		TujuanPembelajaran: FromTujuanResponse(tp),
		Materi:             FromMateriResponse(m),
	}
}
