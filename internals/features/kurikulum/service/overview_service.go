package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"

	"gorm.io/gorm"
)

// OverviewFilter: semua field opsional; nil/kosong = tanpa batasan.
type OverviewFilter struct {
	KurikulumID *uint
	FaseID      *uint
	KelasID     *uint
	Search      string
}

// OverviewRow: satu baris hasil flatten materi × element × tujuan pembelajaran.
// Element nil kalau kurikulum materi tidak punya element.
type OverviewRow struct {
	Element *model.ElementModel
	Tujuan  *model.TujuanPembelajaranModel
	Materi  *model.MateriModel
}

// ApplyMateriFilter menambahkan WHERE ke query atas tabel materis.
// Pencarian pakai EXISTS supaya satu materi tidak muncul berkali-kali.
func ApplyMateriFilter(q *gorm.DB, f OverviewFilter) *gorm.DB {
	if f.KurikulumID != nil {
		q = q.Where("materis.materi_kurikulum_id = ?", *f.KurikulumID)
	}
	if f.FaseID != nil {
		q = q.Where("materis.materi_fase_id = ?", *f.FaseID)
	}
	if f.KelasID != nil {
		q = q.Where("materis.materi_kelas_id = ?", *f.KelasID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		kw := helper.LikePattern(s)
		q = q.Where(`(
			LOWER(materis.materi_nama) LIKE ? ESCAPE '\'
			OR EXISTS (
				SELECT 1
				FROM `+model.MateriTujuanTable+` mt
				JOIN tujuan_pembelajarans tp ON tp.tujuan_id = mt.tujuan_id
				WHERE mt.materi_id = materis.materi_id
				  AND LOWER(tp.tujuan_nama) LIKE ? ESCAPE '\'
			)
			OR EXISTS (
				SELECT 1
				FROM elements e
				WHERE e.element_kurikulum_id = materis.materi_kurikulum_id
				  AND LOWER(e.element_nama) LIKE ? ESCAPE '\'
			)
		)`, kw, kw, kw)
	}
	return q
}

// FindOverviewMateris: materi yang lolos filter, lengkap dengan relasi untuk serialisasi.
// Urutan: materi_id ASC, element_id ASC, tujuan per flow number.
func FindOverviewMateris(ctx context.Context, db *gorm.DB, f OverviewFilter) ([]model.MateriModel, error) {
	var rows []model.MateriModel
	q := ApplyMateriFilter(db.WithContext(ctx).Model(&model.MateriModel{}), f).
		Preload("Kurikulum").
		Preload("Kurikulum.Elements", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("element_id ASC")
		}).
		Preload("Fase").
		Preload("Fase.Kelas").
		Preload("Kelas").
		Preload("TujuanPembelajaran").
		Order("materis.materi_id ASC")
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find overview materis: %w", err)
	}
	for i := range rows {
		SortTujuan(rows[i].TujuanPembelajaran)
	}
	return rows, nil
}

// Flatten: untuk tiap materi, tiap element kurikulumnya (atau satu placeholder nil),
// tiap tujuan pembelajaran materi → satu baris. Jumlah baris per materi = max(1,E) × T.
func Flatten(materis []model.MateriModel) []OverviewRow {
	var out []OverviewRow
	for i := range materis {
		m := &materis[i]
		if len(m.TujuanPembelajaran) == 0 {
			continue
		}
		elements := []*model.ElementModel{nil}
		if m.Kurikulum != nil && len(m.Kurikulum.Elements) > 0 {
			elements = make([]*model.ElementModel, len(m.Kurikulum.Elements))
			for j := range m.Kurikulum.Elements {
				elements[j] = &m.Kurikulum.Elements[j]
			}
		}
		for _, el := range elements {
			for k := range m.TujuanPembelajaran {
				out = append(out, OverviewRow{
					Element: el,
					Tujuan:  &m.TujuanPembelajaran[k],
					Materi:  m,
				})
			}
		}
	}
	return out
}

// CurriculumOverview = filter + flatten. Paginasi dilakukan pemanggil di atas hasil ini.
func CurriculumOverview(ctx context.Context, db *gorm.DB, f OverviewFilter) ([]OverviewRow, error) {
	materis, err := FindOverviewMateris(ctx, db, f)
	if err != nil {
		return nil, err
	}
	return Flatten(materis), nil
}

// SortTujuan mengurutkan tujuan pembelajaran berdasarkan flow number
// (numerik kalau keduanya angka, selain itu leksikal), lalu id.
func SortTujuan(tps []model.TujuanPembelajaranModel) {
	sort.SliceStable(tps, func(i, j int) bool {
		a, b := strings.TrimSpace(tps[i].TujuanFlowNumber), strings.TrimSpace(tps[j].TujuanFlowNumber)
		if a != b {
			return lessFlow(a, b)
		}
		return tps[i].TujuanID < tps[j].TujuanID
	})
}

func lessFlow(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true // angka dulu
	case errB == nil:
		return false
	}
	return a < b
}
