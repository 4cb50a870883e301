package controller_test

import (
	"strconv"
	"testing"
	"time"

	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/testutil"
	helper "kurikulum_backend/internals/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type overviewRow struct {
	Element *struct {
		ID        uint   `json:"id"`
		Nama      string `json:"nama"`
		Kurikulum *struct {
			ID   uint   `json:"id"`
			Nama string `json:"nama"`
		} `json:"kurikulum"`
	} `json:"element"`
	TujuanPembelajaran struct {
		ID         uint   `json:"id"`
		Nama       string `json:"nama"`
		FlowNumber string `json:"flow_number"`
	} `json:"tujuan_pembelajaran"`
	Materi struct {
		ID                 uint    `json:"id"`
		Nama               string  `json:"nama"`
		RPP                *string `json:"rpp"`
		BahasaPemrograman  string  `json:"bahasa_pemrograman"`
		TujuanPembelajaran []struct {
			ID uint `json:"id"`
		} `json:"tujuan_pembelajaran"`
		Fase *struct {
			Fase    string  `json:"fase"`
			Kelas   *string `json:"kelas"`
			Jenjang *string `json:"jenjang"`
		} `json:"fase"`
		Kelas *struct {
			Kelas   string `json:"kelas"`
			Jenjang string `json:"jenjang"`
		} `json:"kelas"`
	} `json:"materi"`
}

type page struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []overviewRow `json:"results"`
}

type catalogFixture struct {
	db     *gorm.DB
	kur    *model.KurikulumModel
	fase   *model.FaseModel
	kelas  *model.KelasModel
	python *model.MateriModel
	orphan *model.MateriModel
}

// 5 baris overview: python (2 element × 2 tujuan) + orphan (placeholder × 1).
func seedCatalog(t *testing.T) catalogFixture {
	t.Helper()
	db := testutil.DB(t)
	f := catalogFixture{db: db}
	f.kelas = testutil.SeedKelas(t, db, "Kelas 7", model.JenjangSMP)
	f.fase = testutil.SeedFase(t, db, "Fase D", f.kelas)
	f.kur = testutil.SeedKurikulum(t, db, "Merdeka", f.fase)
	testutil.SeedElement(t, db, f.kur, "Berpikir Komputasional")
	testutil.SeedElement(t, db, f.kur, "Literasi Digital")
	tp1 := testutil.SeedTujuan(t, db, f.kur, "Memahami algoritma", "1")
	tp2 := testutil.SeedTujuan(t, db, f.kur, "Menulis program", "2")
	f.python = testutil.SeedMateri(t, db, testutil.MateriOpts{
		Nama: "Dasar Python", Kurikulum: f.kur, Fase: f.fase, Kelas: f.kelas,
		Tujuan: []*model.TujuanPembelajaranModel{tp1, tp2},
	})
	require.NoError(t, db.Model(f.python).Update("materi_rpp", "kurikulum/rpp/python.pdf").Error)
	f.orphan = testutil.SeedMateri(t, db, testutil.MateriOpts{
		Nama: "Lepas", Tujuan: []*model.TujuanPembelajaranModel{tp1},
	})
	return f
}

func TestCurriculumOverview_FirstPage(t *testing.T) {
	helper.SetMediaBaseURL("http://cdn.test/media/")
	f := seedCatalog(t)
	app := newApp(f.db)

	r := get(t, app, "/curriculum-overview")
	require.Equal(t, 200, r.Status, string(r.Body))
	p := decode[page](t, r)

	assert.Equal(t, 5, p.Count)
	assert.Nil(t, p.Previous)
	require.NotNil(t, p.Next)
	assert.Equal(t, "http://example.com/curriculum-overview?page=2", *p.Next)
	require.Len(t, p.Results, 2)

	row := p.Results[0]
	require.NotNil(t, row.Element)
	require.NotNil(t, row.Element.Kurikulum)
	assert.Equal(t, "Merdeka", row.Element.Kurikulum.Nama)
	assert.Equal(t, "Dasar Python", row.Materi.Nama)
	require.NotNil(t, row.Materi.RPP)
	assert.Equal(t, "http://cdn.test/media/kurikulum/rpp/python.pdf", *row.Materi.RPP)
	assert.Equal(t, "python", row.Materi.BahasaPemrograman)
	assert.Len(t, row.Materi.TujuanPembelajaran, 2)
	require.NotNil(t, row.Materi.Fase)
	require.NotNil(t, row.Materi.Fase.Jenjang)
	assert.Equal(t, "SMP", *row.Materi.Fase.Jenjang)
	require.NotNil(t, row.Materi.Kelas)
	assert.Equal(t, "Kelas 7", row.Materi.Kelas.Kelas)
}

func TestCurriculumOverview_PagesConcatenateExactlyOnce(t *testing.T) {
	f := seedCatalog(t)
	app := newApp(f.db)

	type key struct {
		element uint
		tujuan  uint
		materi  uint
	}
	seen := map[key]bool{}
	var all []key

	target := "/curriculum-overview"
	for i := 0; i < 10 && target != ""; i++ {
		r := get(t, app, target)
		require.Equal(t, 200, r.Status, string(r.Body))
		p := decode[page](t, r)
		assert.Equal(t, 5, p.Count)
		for _, row := range p.Results {
			k := key{tujuan: row.TujuanPembelajaran.ID, materi: row.Materi.ID}
			if row.Element != nil {
				k.element = row.Element.ID
			}
			assert.False(t, seen[k], "duplikat %+v", k)
			seen[k] = true
			all = append(all, k)
		}
		target = ""
		if p.Next != nil {
			target = *p.Next
		}
	}
	assert.Len(t, all, 5)
	assert.Equal(t, f.orphan.MateriID, all[4].materi)
	assert.Zero(t, all[4].element)
}

func TestCurriculumOverview_LastPageAndLinks(t *testing.T) {
	f := seedCatalog(t)
	app := newApp(f.db)

	p := decode[page](t, get(t, app, "/curriculum-overview?page=last"))
	assert.Len(t, p.Results, 1)
	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, "http://example.com/curriculum-overview?page=2", *p.Previous)

	p = decode[page](t, get(t, app, "/curriculum-overview?page=2"))
	require.NotNil(t, p.Previous)
	assert.Equal(t, "http://example.com/curriculum-overview", *p.Previous)

	// page_size dibatasi max (5)
	p = decode[page](t, get(t, app, "/curriculum-overview?page_size=50"))
	assert.Len(t, p.Results, 5)
	assert.Nil(t, p.Next)
}

func TestCurriculumOverview_Filters(t *testing.T) {
	f := seedCatalog(t)
	app := newApp(f.db)

	id := strconv.FormatUint(uint64(f.kelas.KelasID), 10)
	p := decode[page](t, get(t, app, "/curriculum-overview?page_size=5&jenjang_id="+id))
	assert.Equal(t, 4, p.Count)

	p = decode[page](t, get(t, app, "/curriculum-overview?search=LEPAS"))
	assert.Equal(t, 1, p.Count)
	assert.Nil(t, p.Results[0].Element)

	p = decode[page](t, get(t, app, "/curriculum-overview?search=%20%20"))
	assert.Equal(t, 5, p.Count)

	p = decode[page](t, get(t, app, "/curriculum-overview?kurikulum_id=9999"))
	assert.Equal(t, 0, p.Count)
	assert.NotNil(t, p.Results)
	assert.Empty(t, p.Results)
}

func TestCurriculumOverview_Errors(t *testing.T) {
	f := seedCatalog(t)
	app := newApp(f.db)

	r := get(t, app, "/curriculum-overview?fase_id=abc")
	assert.Equal(t, 400, r.Status)
	assert.Equal(t, "BAD_REQUEST", decode[errorBody](t, r).ErrorCode)

	for _, q := range []string{"page=9", "page=0", "page=x"} {
		r = get(t, app, "/curriculum-overview?"+q)
		assert.Equal(t, 404, r.Status, q)
		assert.Equal(t, "Invalid page.", decode[errorBody](t, r).Message, q)
	}
}

func TestFilterOptions(t *testing.T) {
	f := seedCatalog(t)
	testutil.SeedFase(t, f.db, "Fase E", nil)
	app := newApp(f.db)

	type faseOut struct {
		ID      uint    `json:"id"`
		Fase    string  `json:"fase"`
		Kelas   *string `json:"kelas"`
		Jenjang *string `json:"jenjang"`
	}
	type body struct {
		Kurikulums []struct {
			ID   uint   `json:"id"`
			Nama string `json:"nama"`
		} `json:"kurikulums"`
		Fases []faseOut `json:"fases"`
	}

	b := decode[body](t, get(t, app, "/filter-options"))
	assert.Len(t, b.Kurikulums, 1)
	require.Len(t, b.Fases, 2)
	require.NotNil(t, b.Fases[0].Kelas)
	assert.Equal(t, "Kelas 7", *b.Fases[0].Kelas)
	assert.Nil(t, b.Fases[1].Jenjang)

	b = decode[body](t, get(t, app, "/filter-options?kurikulum_id="+strconv.FormatUint(uint64(f.kur.KurikulumID), 10)))
	require.Len(t, b.Fases, 1)
	assert.Equal(t, "Fase D", b.Fases[0].Fase)

	for _, q := range []string{"9999", "abc"} {
		r := get(t, app, "/filter-options?kurikulum_id="+q)
		require.Equal(t, 200, r.Status)
		b = decode[body](t, r)
		assert.Len(t, b.Kurikulums, 1, q)
		assert.NotNil(t, b.Fases, q)
		assert.Empty(t, b.Fases, q)
	}
}

func TestMateriItems(t *testing.T) {
	helper.SetMediaBaseURL("http://cdn.test/media/")
	f := seedCatalog(t)
	item := testutil.SeedMateriItem(t, f.db, f.python, "Variabel", true)
	testutil.SeedVideo(t, f.db, item, "kurikulum/videos/var.mp4")
	testutil.SeedMateriItem(t, f.db, f.orphan, "Lain", false)
	app := newApp(f.db)

	r := get(t, app, "/materi-items")
	assert.Equal(t, 400, r.Status)

	r = get(t, app, "/materi-items?materi_id=x")
	assert.Equal(t, 400, r.Status)

	r = get(t, app, "/materi-items?materi_id=9999")
	assert.Equal(t, 404, r.Status)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, r).ErrorCode)

	type itemOut struct {
		ID        uint   `json:"id"`
		Nama      string `json:"nama"`
		QCApprove bool   `json:"qc_approve"`
		Videos    []struct {
			ID    uint    `json:"id"`
			Video *string `json:"video"`
		} `json:"videos"`
		CreatedAt time.Time `json:"created_at"`
	}
	r = get(t, app, "/materi-items/?materi_id="+strconv.FormatUint(uint64(f.python.MateriID), 10))
	require.Equal(t, 200, r.Status, string(r.Body))
	items := decode[[]itemOut](t, r)
	require.Len(t, items, 1)
	assert.Equal(t, item.MateriItemID, items[0].ID)
	assert.True(t, items[0].QCApprove)
	require.Len(t, items[0].Videos, 1)
	assert.Equal(t, "http://cdn.test/media/kurikulum/videos/var.mp4", *items[0].Videos[0].Video)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestChoices_NewestFirst(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedKurikulum(t, db, "Lama")
	testutil.SeedKurikulum(t, db, "Baru")
	testutil.SeedKelas(t, db, "Kelas 1", model.JenjangSD)
	testutil.SeedFase(t, db, "Fase A", nil)
	app := newApp(db)

	type kur struct {
		ID   uint   `json:"id"`
		Nama string `json:"nama"`
	}
	ks := decode[[]kur](t, get(t, app, "/non-paginated/choices/kurikulum/"))
	require.Len(t, ks, 2)
	assert.Equal(t, "Baru", ks[0].Nama)

	type kelas struct {
		Kelas   string `json:"kelas"`
		Jenjang string `json:"jenjang"`
	}
	kl := decode[[]kelas](t, get(t, app, "/non-paginated/choices/kelas"))
	require.Len(t, kl, 1)
	assert.Equal(t, kelas{Kelas: "Kelas 1", Jenjang: "SD"}, kl[0])

	type fase struct {
		Fase      string  `json:"fase"`
		Deskripsi *string `json:"deskripsi"`
	}
	fs := decode[[]fase](t, get(t, app, "/non-paginated/choices/fase"))
	require.Len(t, fs, 1)
	assert.Equal(t, "Fase A", fs[0].Fase)
	assert.Nil(t, fs[0].Deskripsi)
}
