// file: internals/features/kurikulum/dto/element_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
)

type ElementDetail struct {
	ElementResponse
	KurikulumID *uint     `json:"kurikulum_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromElementDetail(m *model.ElementModel) ElementDetail {
	return ElementDetail{
		ElementResponse: *FromElementResponse(m),
		KurikulumID:     m.ElementKurikulumID,
		CreatedAt:       m.ElementCreatedAt,
	}
}

type ElementRequest struct {
	Nama        *string            `json:"nama" validate:"omitempty,max=255"`
	Deskripsi   PatchField[string] `json:"deskripsi"`
	KurikulumID PatchField[uint]   `json:"kurikulum_id"`
}

func (r *ElementRequest) Normalize() {
	trimPtr(&r.Nama)
	trimPatch(&r.Deskripsi)
	idPatch(&r.KurikulumID)
}

func (r ElementRequest) Apply(m *model.ElementModel) {
	if r.Nama != nil {
		m.ElementNama = *r.Nama
	}
	if r.Deskripsi.Present {
		m.ElementDeskripsi = r.Deskripsi.Value
	}
	if r.KurikulumID.Present {
		m.ElementKurikulumID = r.KurikulumID.Value
	}
}
