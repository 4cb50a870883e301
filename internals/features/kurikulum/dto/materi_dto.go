// file: internals/features/kurikulum/dto/materi_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/constants"
	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

type MateriDetail struct {
	MateriResponse
	KurikulumID *uint     `json:"kurikulum_id"`
	FaseID      *uint     `json:"fase_id"`
	KelasID     *uint     `json:"kelas_id"`
	TujuanIDs   []uint    `json:"tujuan_pembelajaran_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMateriDetail(m *model.MateriModel) MateriDetail {
	ids := make([]uint, 0, len(m.TujuanPembelajaran))
	for _, tp := range m.TujuanPembelajaran {
		ids = append(ids, tp.TujuanID)
	}
	return MateriDetail{
		MateriResponse: FromMateriResponse(m),
		KurikulumID:    m.MateriKurikulumID,
		FaseID:         m.MateriFaseID,
		KelasID:        m.MateriKelasID,
		TujuanIDs:      ids,
		CreatedAt:      m.MateriCreatedAt,
	}
}

type MateriRequest struct {
	Nama              *string            `json:"nama" validate:"omitempty,max=255"`
	KurikulumID       PatchField[uint]   `json:"kurikulum_id"`
	FaseID            PatchField[uint]   `json:"fase_id"`
	KelasID           PatchField[uint]   `json:"kelas_id"`
	BahasaPemrograman *string            `json:"bahasa_pemrograman" validate:"omitempty,oneof=scratch blockly python javascript html_css java cpp lainnya"`
	JumlahJam         *int               `json:"jumlah_jam" validate:"omitempty,gte=0"`
	RPP               PatchField[string] `json:"rpp"`
	TujuanIDs         *[]uint            `json:"tujuan_pembelajaran_ids"`
}

func (r *MateriRequest) Normalize() {
	trimPtr(&r.Nama)
	trimPtr(&r.BahasaPemrograman)
	trimPatch(&r.RPP)
	idPatch(&r.KurikulumID)
	idPatch(&r.FaseID)
	idPatch(&r.KelasID)
}

// Apply: error hanya dari validasi file RPP (FieldErrors).
func (r MateriRequest) Apply(m *model.MateriModel) error {
	fe := helper.FieldErrors{}
	if r.Nama != nil {
		m.MateriNama = *r.Nama
	}
	if r.KurikulumID.Present {
		m.MateriKurikulumID = r.KurikulumID.Value
	}
	if r.FaseID.Present {
		m.MateriFaseID = r.FaseID.Value
	}
	if r.KelasID.Present {
		m.MateriKelasID = r.KelasID.Value
	}
	if r.BahasaPemrograman != nil {
		m.MateriBahasaPemrograman = model.ProgrammingLanguage(*r.BahasaPemrograman)
	}
	if r.JumlahJam != nil {
		m.MateriJumlahJam = *r.JumlahJam
	}
	if r.RPP.Present {
		p, err := helper.NormalizeUpload(constants.UploadRPP, r.RPP.Value)
		if err != nil {
			fe.Add("rpp", err.Error())
		} else {
			m.MateriRPP = p
		}
	}
	return fe.ErrOrNil()
}
