// file: internals/features/kurikulum/dto/choices_dto.go
package dto

import "kurikulum_backend/internals/features/kurikulum/model"

/* ===============================
   Record minimal (choices & nested)
=================================*/

type KurikulumChoice struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type KelasChoice struct {
	ID      uint          `json:"id"`
	Kelas   string        `json:"kelas"`
	Jenjang model.Jenjang `json:"jenjang"`
}

type FaseChoice struct {
	ID        uint    `json:"id"`
	Fase      string  `json:"fase"`
	Deskripsi *string `json:"deskripsi"`
}

// FaseResponse: fase + label kelas & jenjang (filter-options, nested di materi).
type FaseResponse struct {
	ID        uint    `json:"id"`
	Fase      string  `json:"fase"`
	Kelas     *string `json:"kelas"`
	Jenjang   *string `json:"jenjang"`
	Deskripsi *string `json:"deskripsi"`
}

func FromKurikulumChoice(m *model.KurikulumModel) *KurikulumChoice {
	if m == nil {
		return nil
	}
	return &KurikulumChoice{ID: m.KurikulumID, Nama: m.KurikulumNama}
}

func FromKelasChoice(m *model.KelasModel) *KelasChoice {
	if m == nil {
		return nil
	}
	return &KelasChoice{ID: m.KelasID, Kelas: m.KelasLabel, Jenjang: m.KelasJenjang}
}

func FromFaseChoice(m *model.FaseModel) FaseChoice {
	return FaseChoice{ID: m.FaseID, Fase: m.FaseNama, Deskripsi: m.FaseDeskripsi}
}

func FromFaseResponse(m *model.FaseModel) *FaseResponse {
	if m == nil {
		return nil
	}
	out := &FaseResponse{ID: m.FaseID, Fase: m.FaseNama, Deskripsi: m.FaseDeskripsi}
	if m.Kelas != nil {
		label, jenjang := m.Kelas.KelasLabel, string(m.Kelas.KelasJenjang)
		out.Kelas = &label
		out.Jenjang = &jenjang
	}
	return out
}

func KurikulumChoices(rows []model.KurikulumModel) []KurikulumChoice {
	out := make([]KurikulumChoice, 0, len(rows))
	for i := range rows {
		out = append(out, *FromKurikulumChoice(&rows[i]))
	}
	return out
}

func KelasChoices(rows []model.KelasModel) []KelasChoice {
	out := make([]KelasChoice, 0, len(rows))
	for i := range rows {
		out = append(out, *FromKelasChoice(&rows[i]))
	}
	return out
}

func FaseChoices(rows []model.FaseModel) []FaseChoice {
	out := make([]FaseChoice, 0, len(rows))
	for i := range rows {
		out = append(out, FromFaseChoice(&rows[i]))
	}
	return out
}

func FaseResponses(rows []model.FaseModel) []FaseResponse {
	out := make([]FaseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromFaseResponse(&rows[i]))
	}
	return out
}

// FilterOptionsResponse: GET /filter-options
type FilterOptionsResponse struct {
	Kurikulums []KurikulumChoice `json:"kurikulums"`
	Fases      []FaseResponse    `json:"fases"`
}
