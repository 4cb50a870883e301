package testutil

import (
	"testing"

	"kurikulum_backend/internals/features/kurikulum/model"

	"gorm.io/gorm"
)

func create(tb testing.TB, db *gorm.DB, v interface{}, what string) {
	tb.Helper()
	if err := db.Create(v).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
}

func SeedKurikulum(tb testing.TB, db *gorm.DB, nama string, fases ...*model.FaseModel) *model.KurikulumModel {
	tb.Helper()
	k := &model.KurikulumModel{KurikulumNama: nama, KurikulumKode: nama}
	create(tb, db, k, "kurikulum")
	for _, f := range fases {
		if err := db.Model(k).Association("Fases").Append(f); err != nil {
			tb.Fatalf("link fase: %v", err)
		}
	}
	return k
}

func SeedKelas(tb testing.TB, db *gorm.DB, label string, jenjang model.Jenjang) *model.KelasModel {
	tb.Helper()
	k := &model.KelasModel{KelasLabel: label, KelasJenjang: jenjang}
	create(tb, db, k, "kelas")
	return k
}

func SeedFase(tb testing.TB, db *gorm.DB, nama string, kelas *model.KelasModel) *model.FaseModel {
	tb.Helper()
	f := &model.FaseModel{FaseNama: nama}
	if kelas != nil {
		f.FaseKelasID = PtrUint(kelas.KelasID)
	}
	create(tb, db, f, "fase")
	return f
}

func SeedElement(tb testing.TB, db *gorm.DB, kur *model.KurikulumModel, nama string) *model.ElementModel {
	tb.Helper()
	e := &model.ElementModel{ElementNama: nama}
	if kur != nil {
		e.ElementKurikulumID = PtrUint(kur.KurikulumID)
	}
	create(tb, db, e, "element")
	return e
}

func SeedTujuan(tb testing.TB, db *gorm.DB, kur *model.KurikulumModel, nama, flow string) *model.TujuanPembelajaranModel {
	tb.Helper()
	tp := &model.TujuanPembelajaranModel{TujuanNama: nama, TujuanFlowNumber: flow}
	if kur != nil {
		tp.TujuanKurikulumID = PtrUint(kur.KurikulumID)
	}
	create(tb, db, tp, "tujuan pembelajaran")
	return tp
}

type MateriOpts struct {
	Nama      string
	Kurikulum *model.KurikulumModel
	Fase      *model.FaseModel
	Kelas     *model.KelasModel
	Tujuan    []*model.TujuanPembelajaranModel
}

func SeedMateri(tb testing.TB, db *gorm.DB, o MateriOpts) *model.MateriModel {
	tb.Helper()
	m := &model.MateriModel{MateriNama: o.Nama, MateriBahasaPemrograman: model.LangPython, MateriJumlahJam: 2}
	if o.Kurikulum != nil {
		m.MateriKurikulumID = PtrUint(o.Kurikulum.KurikulumID)
	}
	if o.Fase != nil {
		m.MateriFaseID = PtrUint(o.Fase.FaseID)
	}
	if o.Kelas != nil {
		m.MateriKelasID = PtrUint(o.Kelas.KelasID)
	}
	create(tb, db, m, "materi")
	for _, tp := range o.Tujuan {
		if err := db.Model(m).Association("TujuanPembelajaran").Append(tp); err != nil {
			tb.Fatalf("link tujuan: %v", err)
		}
	}
	return m
}

func SeedMateriItem(tb testing.TB, db *gorm.DB, materi *model.MateriModel, nama string, qc bool) *model.MateriItemModel {
	tb.Helper()
	it := &model.MateriItemModel{MateriItemNama: nama, MateriItemQCApprove: qc}
	if materi != nil {
		it.MateriItemMateriID = PtrUint(materi.MateriID)
	}
	create(tb, db, it, "materi item")
	return it
}

func SeedVideo(tb testing.TB, db *gorm.DB, item *model.MateriItemModel, p string) *model.MateriItemVideoModel {
	tb.Helper()
	v := &model.MateriItemVideoModel{VideoPath: PtrString(p)}
	if item != nil {
		v.VideoMateriItemID = PtrUint(item.MateriItemID)
	}
	create(tb, db, v, "video")
	return v
}

func Count(tb testing.TB, db *gorm.DB, m interface{}) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}

func PtrUint(v uint) *uint { return &v }

func PtrString(v string) *string { return &v }
