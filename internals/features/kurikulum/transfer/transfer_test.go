package transfer_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/testutil"
	"kurikulum_backend/internals/features/kurikulum/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffID, Fase ,deskripsi\n1,Fase A,awal\n\n,Fase B\n"
	rows, err := transfer.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "1", rows[0].Get("id"))
	assert.Equal(t, "Fase A", rows[0].Get("fase"))

	assert.Equal(t, 4, rows[1].Line)
	assert.True(t, rows[1].Has("deskripsi"))
	assert.Equal(t, "", rows[1].Get("deskripsi"))
	assert.False(t, rows[1].Has("kelas_id"))

	_, err = transfer.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, transfer.ErrEmptyCSV)

	_, err = transfer.ReadCSV(strings.NewReader("id\n1,2\n"))
	assert.Error(t, err)
}

func readRows(t *testing.T, csv string) []transfer.Row {
	t.Helper()
	rows, err := transfer.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return rows
}

func TestImport_CreateAndUpdate(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	kelas := testutil.SeedKelas(t, db, "Kelas 1", model.JenjangSD)
	existing := testutil.SeedFase(t, db, "Fase Lama", nil)

	csv := "id,fase,deskripsi,kelas_id\n" +
		uitoa(existing.FaseID) + ",Fase A,diperbarui," + uitoa(kelas.KelasID) + "\n" +
		",Fase B,,\n" +
		"999,Fase C,id tidak dikenal,\n"

	rep, err := transfer.Fase.Import(ctx, db, readRows(t, csv), false)
	require.NoError(t, err)
	assert.False(t, rep.Failed(), "%v", rep.Errors)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 2, rep.Created)
	assert.Equal(t, 1, rep.Updated)

	var got model.FaseModel
	require.NoError(t, db.First(&got, existing.FaseID).Error)
	assert.Equal(t, "Fase A", got.FaseNama)
	require.NotNil(t, got.FaseDeskripsi)
	assert.Equal(t, "diperbarui", *got.FaseDeskripsi)
	require.NotNil(t, got.FaseKelasID)
	assert.Equal(t, kelas.KelasID, *got.FaseKelasID)

	assert.EqualValues(t, 3, testutil.Count(t, db, &model.FaseModel{}))
}

func TestImport_ErrorsRollBackEverything(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedFase(t, db, "Fase A", nil)

	csv := "fase,kelas_id\n" +
		"Fase B,\n" + // valid
		"Fase A,\n" + // duplikat
		",404\n" + // fase wajib
		"Fase D,abc\n" + // id tidak valid
		"Fase E,404\n" // kelas tidak ada

	rep, err := transfer.Fase.Import(ctx, db, readRows(t, csv), false)
	require.NoError(t, err)
	require.True(t, rep.Failed())

	var lines []int
	for _, e := range rep.Errors {
		lines = append(lines, e.Row)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, lines)
	assert.Contains(t, rep.Errors[0].Message, "fase")

	// Fase B tidak ikut tersimpan
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.FaseModel{}))
}

func TestImport_DryRunLeavesStoreUnchanged(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	rep, err := transfer.Kelas.Import(ctx, db, readRows(t, "kelas,jenjang\nKelas 1,SD\nKelas 7,SMP\n"), true)
	require.NoError(t, err)
	assert.True(t, rep.DryRun)
	assert.False(t, rep.Failed())
	assert.Equal(t, 2, rep.Created)
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.KelasModel{}))
}

func TestExportImportRoundTrip_Materi(t *testing.T) {
	src := testutil.DB(t)
	ctx := context.Background()

	kur := testutil.SeedKurikulum(t, src, "Merdeka")
	tp1 := testutil.SeedTujuan(t, src, kur, "Algoritma", "1")
	tp2 := testutil.SeedTujuan(t, src, kur, "Variabel", "2")
	m := testutil.SeedMateri(t, src, testutil.MateriOpts{
		Nama: "Python", Kurikulum: kur, Tujuan: []*model.TujuanPembelajaranModel{tp1, tp2},
	})

	var buf bytes.Buffer
	n, err := transfer.Materi.Export(ctx, src, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, strings.HasPrefix(buf.String(), "id,nama,kurikulum_id,"))
	assert.Contains(t, buf.String(), uitoa(tp1.TujuanID)+";"+uitoa(tp2.TujuanID))

	// import ulang ke store yang sama → update, bukan duplikat
	rep, err := transfer.Materi.Import(ctx, src, readRows(t, buf.String()), false)
	require.NoError(t, err)
	assert.False(t, rep.Failed(), "%v", rep.Errors)
	assert.Equal(t, 1, rep.Updated)
	assert.EqualValues(t, 1, testutil.Count(t, src, &model.MateriModel{}))

	var got model.MateriModel
	require.NoError(t, src.Preload("TujuanPembelajaran").First(&got, m.MateriID).Error)
	assert.Equal(t, "Python", got.MateriNama)
	assert.Len(t, got.TujuanPembelajaran, 2)
	assert.Equal(t, m.MateriJumlahJam, got.MateriJumlahJam)
}

func TestImport_KurikulumFaseLinks(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	a := testutil.SeedFase(t, db, "Fase A", nil)
	b := testutil.SeedFase(t, db, "Fase B", nil)

	csv := "nama,fase_ids\nKurikulum Merdeka," + uitoa(a.FaseID) + ";" + uitoa(b.FaseID) + "\n"
	rep, err := transfer.Kurikulum.Import(ctx, db, readRows(t, csv), false)
	require.NoError(t, err)
	require.False(t, rep.Failed(), "%v", rep.Errors)

	var kur model.KurikulumModel
	require.NoError(t, db.Preload("Fases").First(&kur).Error)
	assert.Equal(t, "kurikulum-merdeka", kur.KurikulumKode)
	assert.Len(t, kur.Fases, 2)
}

func TestImport_ReferenceLookupFailureAborts(t *testing.T) {
	db := testutil.DB(t)
	require.NoError(t, db.Migrator().DropTable(&model.KurikulumModel{}))

	rows, err := transfer.ReadCSV(strings.NewReader("nama,kurikulum_id\nLiterasi,1\n"))
	require.NoError(t, err)

	report, err := transfer.Element.Import(context.Background(), db, rows, false)
	require.Error(t, err)
	assert.Empty(t, report.Errors)
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.ElementModel{}))
}
