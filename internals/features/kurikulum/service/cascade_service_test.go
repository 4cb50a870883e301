package service_test

import (
	"context"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/service"
	"kurikulum_backend/internals/features/kurikulum/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type graph struct {
	kur    *model.KurikulumModel
	other  *model.KurikulumModel
	fase   *model.FaseModel
	kelas  *model.KelasModel
	materi *model.MateriModel
	keep   *model.MateriModel
	item   *model.MateriItemModel
	tujuan *model.TujuanPembelajaranModel
}

func seedGraph(t *testing.T, db *gorm.DB) graph {
	t.Helper()
	var g graph
	g.kelas = testutil.SeedKelas(t, db, "Kelas 7", model.JenjangSMP)
	g.fase = testutil.SeedFase(t, db, "Fase D", g.kelas)
	g.kur = testutil.SeedKurikulum(t, db, "Merdeka", g.fase)
	g.other = testutil.SeedKurikulum(t, db, "K13", g.fase)
	testutil.SeedElement(t, db, g.kur, "Literasi Digital")
	testutil.SeedElement(t, db, g.other, "Jaringan")
	g.tujuan = testutil.SeedTujuan(t, db, g.kur, "Memahami algoritma", "1")
	otherTujuan := testutil.SeedTujuan(t, db, g.other, "Membuat web", "1")

	g.materi = testutil.SeedMateri(t, db, testutil.MateriOpts{
		Nama: "Python", Kurikulum: g.kur, Fase: g.fase, Kelas: g.kelas,
		Tujuan: []*model.TujuanPembelajaranModel{g.tujuan, otherTujuan},
	})
	g.keep = testutil.SeedMateri(t, db, testutil.MateriOpts{
		Nama: "HTML", Kurikulum: g.other,
		Tujuan: []*model.TujuanPembelajaranModel{otherTujuan},
	})
	g.item = testutil.SeedMateriItem(t, db, g.materi, "Variabel", true)
	testutil.SeedVideo(t, db, g.item, "kurikulum/videos/a.mp4")
	keepItem := testutil.SeedMateriItem(t, db, g.keep, "Tag", false)
	testutil.SeedVideo(t, db, keepItem, "kurikulum/videos/b.mp4")
	return g
}

func joinCount(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestDeleteKurikulum_Cascades(t *testing.T) {
	db := testutil.DB(t)
	g := seedGraph(t, db)

	require.NoError(t, service.DeleteKurikulum(context.Background(), db, g.kur.KurikulumID))

	assert.EqualValues(t, 1, testutil.Count(t, db, &model.KurikulumModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.ElementModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.TujuanPembelajaranModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriItemModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriItemVideoModel{}))
	assert.EqualValues(t, 1, joinCount(t, db, model.KurikulumFaseTable))
	assert.EqualValues(t, 1, joinCount(t, db, model.MateriTujuanTable))
	// fase tetap ada, hanya link-nya yang hilang
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.FaseModel{}))
}

func TestDeleteMateri_CascadesItemsAndVideos(t *testing.T) {
	db := testutil.DB(t)
	g := seedGraph(t, db)

	require.NoError(t, service.DeleteMateri(context.Background(), db, g.materi.MateriID))

	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriItemModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriItemVideoModel{}))
	assert.EqualValues(t, 1, joinCount(t, db, model.MateriTujuanTable))
	assert.EqualValues(t, 2, testutil.Count(t, db, &model.TujuanPembelajaranModel{}))
}

func TestDeleteKelas_DetachesFaseAndDropsMateri(t *testing.T) {
	db := testutil.DB(t)
	g := seedGraph(t, db)

	require.NoError(t, service.DeleteKelas(context.Background(), db, g.kelas.KelasID))

	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriModel{}))
	var fase model.FaseModel
	require.NoError(t, db.First(&fase, g.fase.FaseID).Error)
	assert.Nil(t, fase.FaseKelasID)
}

func TestDeleteFase_Cascades(t *testing.T) {
	db := testutil.DB(t)
	g := seedGraph(t, db)

	require.NoError(t, service.DeleteFase(context.Background(), db, g.fase.FaseID))

	assert.EqualValues(t, 0, testutil.Count(t, db, &model.FaseModel{}))
	assert.EqualValues(t, 0, joinCount(t, db, model.KurikulumFaseTable))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriModel{}))
	assert.EqualValues(t, 2, testutil.Count(t, db, &model.KurikulumModel{}))
}

func TestDeleteTujuanAndItem(t *testing.T) {
	db := testutil.DB(t)
	g := seedGraph(t, db)
	ctx := context.Background()

	require.NoError(t, service.DeleteTujuan(ctx, db, g.tujuan.TujuanID))
	assert.EqualValues(t, 2, joinCount(t, db, model.MateriTujuanTable))

	require.NoError(t, service.DeleteMateriItem(ctx, db, g.item.MateriItemID))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.MateriItemVideoModel{}))
	assert.EqualValues(t, 2, testutil.Count(t, db, &model.MateriModel{}))
}

func TestDelete_MissingReturnsNotFound(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	for name, del := range map[string]func() error{
		"kurikulum": func() error { return service.DeleteKurikulum(ctx, db, 77) },
		"fase":      func() error { return service.DeleteFase(ctx, db, 77) },
		"kelas":     func() error { return service.DeleteKelas(ctx, db, 77) },
		"element":   func() error { return service.DeleteElement(ctx, db, 77) },
		"tujuan":    func() error { return service.DeleteTujuan(ctx, db, 77) },
		"materi":    func() error { return service.DeleteMateri(ctx, db, 77) },
		"item":      func() error { return service.DeleteMateriItem(ctx, db, 77) },
		"video":     func() error { return service.DeleteMateriItemVideo(ctx, db, 77) },
	} {
		assert.ErrorIs(t, del(), gorm.ErrRecordNotFound, name)
	}
}
