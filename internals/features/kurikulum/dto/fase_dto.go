// file: internals/features/kurikulum/dto/fase_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

type FaseDetail struct {
	FaseResponse
	KelasID   *uint     `json:"kelas_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromFaseDetail(m *model.FaseModel) FaseDetail {
	return FaseDetail{
		FaseResponse: *FromFaseResponse(m),
		KelasID:      m.FaseKelasID,
		CreatedAt:    m.FaseCreatedAt,
	}
}

type FaseRequest struct {
	Fase      *string            `json:"fase" validate:"omitempty,min=1,max=255"`
	Deskripsi PatchField[string] `json:"deskripsi"`
	KelasID   PatchField[uint]   `json:"kelas_id"`
}

func (r *FaseRequest) Normalize() {
	trimPtr(&r.Fase)
	trimPatch(&r.Deskripsi)
	idPatch(&r.KelasID)
}

// RequireCreate: field wajib saat create.
func (r FaseRequest) RequireCreate() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if r.Fase == nil || *r.Fase == "" {
		fe.Add("fase", "wajib diisi")
	}
	return fe
}

func (r FaseRequest) Apply(m *model.FaseModel) {
	if r.Fase != nil {
		m.FaseNama = *r.Fase
	}
	if r.Deskripsi.Present {
		m.FaseDeskripsi = r.Deskripsi.Value
	}
	if r.KelasID.Present {
		m.FaseKelasID = r.KelasID.Value
	}
}
