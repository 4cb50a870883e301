// file: internals/features/kurikulum/dto/tujuan_pembelajaran_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
)

type TujuanDetail struct {
	TujuanResponse
	KurikulumID *uint            `json:"kurikulum_id"`
	Kurikulum   *KurikulumChoice `json:"kurikulum"`
	CreatedAt   time.Time        `json:"created_at"`
}

func FromTujuanDetail(m *model.TujuanPembelajaranModel) TujuanDetail {
	return TujuanDetail{
		TujuanResponse: FromTujuanResponse(m),
		KurikulumID:    m.TujuanKurikulumID,
		Kurikulum:      FromKurikulumChoice(m.Kurikulum),
		CreatedAt:      m.TujuanCreatedAt,
	}
}

type TujuanRequest struct {
	Nama        *string          `json:"nama" validate:"omitempty,max=255"`
	FlowNumber  *string          `json:"flow_number" validate:"omitempty,max=255"`
	KurikulumID PatchField[uint] `json:"kurikulum_id"`
}

func (r *TujuanRequest) Normalize() {
	trimPtr(&r.Nama)
	trimPtr(&r.FlowNumber)
	idPatch(&r.KurikulumID)
}

func (r TujuanRequest) Apply(m *model.TujuanPembelajaranModel) {
	if r.Nama != nil {
		m.TujuanNama = *r.Nama
	}
	if r.FlowNumber != nil {
		m.TujuanFlowNumber = *r.FlowNumber
	}
	if r.KurikulumID.Present {
		m.TujuanKurikulumID = r.KurikulumID.Value
	}
}
