// file: internals/features/kurikulum/dto/kelas_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

type KelasDetail struct {
	KelasChoice
	CreatedAt time.Time `json:"created_at"`
}

func FromKelasDetail(m *model.KelasModel) KelasDetail {
	return KelasDetail{KelasChoice: *FromKelasChoice(m), CreatedAt: m.KelasCreatedAt}
}

type KelasRequest struct {
	Kelas   *string `json:"kelas" validate:"omitempty,min=1,max=255"`
	Jenjang *string `json:"jenjang" validate:"omitempty,oneof=SD SMP SMA SMK"`
}

func (r *KelasRequest) Normalize() {
	trimPtr(&r.Kelas)
	trimPtr(&r.Jenjang)
}

func (r KelasRequest) RequireCreate() helper.FieldErrors {
	fe := helper.FieldErrors{}
	if r.Kelas == nil || *r.Kelas == "" {
		fe.Add("kelas", "wajib diisi")
	}
	if r.Jenjang == nil || *r.Jenjang == "" {
		fe.Add("jenjang", "wajib diisi")
	}
	return fe
}

func (r KelasRequest) Apply(m *model.KelasModel) {
	if r.Kelas != nil {
		m.KelasLabel = *r.Kelas
	}
	if r.Jenjang != nil {
		m.KelasJenjang = model.Jenjang(*r.Jenjang)
	}
}
