// file: internals/features/kurikulum/dto/kurikulum_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

type KurikulumDetail struct {
	ID        uint         `json:"id"`
	Nama      string       `json:"nama"`
	Kode      string       `json:"kode"`
	Referensi *string      `json:"referensi"`
	Fases     []FaseChoice `json:"fases"`
	CreatedAt time.Time    `json:"created_at"`
}

func FromKurikulumDetail(m *model.KurikulumModel) KurikulumDetail {
	return KurikulumDetail{
		ID:        m.KurikulumID,
		Nama:      m.KurikulumNama,
		Kode:      m.KurikulumKode,
		Referensi: m.KurikulumReferensi,
		Fases:     FaseChoices(m.Fases),
		CreatedAt: m.KurikulumCreatedAt,
	}
}

// KurikulumRequest dipakai untuk POST (create) maupun PUT/PATCH (partial).
type KurikulumRequest struct {
	Nama      *string            `json:"nama" validate:"omitempty,max=255"`
	Kode      *string            `json:"kode" validate:"omitempty,max=255"`
	Referensi PatchField[string] `json:"referensi"`
	FaseIDs   *[]uint            `json:"fase_ids"`
}

func (r *KurikulumRequest) Normalize() {
	trimPtr(&r.Nama)
	trimPtr(&r.Kode)
	trimPatch(&r.Referensi)
}

// Apply menimpa field yang dikirim saja. Kode kosong → slug dari nama (derived=true).
func (r KurikulumRequest) Apply(m *model.KurikulumModel) (derived bool) {
	if r.Nama != nil {
		m.KurikulumNama = *r.Nama
	}
	if r.Kode != nil {
		m.KurikulumKode = *r.Kode
	}
	if r.Referensi.Present {
		m.KurikulumReferensi = r.Referensi.Value
	}
	if m.KurikulumKode == "" {
		m.KurikulumKode = helper.Slugify(m.KurikulumNama, 255)
		return m.KurikulumKode != ""
	}
	return false
}
