package kurikulum

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KelasSeed struct {
	Kelas   string `json:"kelas"`
	Jenjang string `json:"jenjang"`
}

type FaseSeed struct {
	Fase      string  `json:"fase"`
	Deskripsi *string `json:"deskripsi"`
	Kelas     string  `json:"kelas"` // label kelas, opsional
}

type ElementSeed struct {
	Nama      string  `json:"nama"`
	Deskripsi *string `json:"deskripsi"`
}

type TujuanSeed struct {
	Nama       string `json:"nama"`
	FlowNumber string `json:"flow_number"`
}

type MateriItemSeed struct {
	Nama      string  `json:"nama"`
	Deskripsi *string `json:"deskripsi"`
	QCApprove bool    `json:"qc_approve"`
}

type MateriSeed struct {
	Nama              string           `json:"nama"`
	BahasaPemrograman string           `json:"bahasa_pemrograman"`
	JumlahJam         int              `json:"jumlah_jam"`
	Fase              string           `json:"fase"`
	Kelas             string           `json:"kelas"`
	Tujuan            []string         `json:"tujuan"` // flow number tujuan di kurikulum yang sama
	Items             []MateriItemSeed `json:"items"`
}

type KurikulumSeed struct {
	Nama      string        `json:"nama"`
	Kode      string        `json:"kode"`
	Referensi *string       `json:"referensi"`
	Fases     []string      `json:"fases"`
	Elements  []ElementSeed `json:"elements"`
	Tujuan    []TujuanSeed  `json:"tujuan_pembelajaran"`
	Materis   []MateriSeed  `json:"materis"`
}

type Data struct {
	Kelas      []KelasSeed     `json:"kelas"`
	Fases      []FaseSeed      `json:"fases"`
	Kurikulums []KurikulumSeed `json:"kurikulums"`
}

// Stats: jumlah baris baru per tabel.
type Stats struct {
	Kelas      int
	Fases      int
	Kurikulums int
	Elements   int
	Tujuan     int
	Materis    int
	Items      int
}

func LoadFile(filePath string) (Data, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return Data{}, fmt.Errorf("baca file seed: %w", err)
	}
	var d Data
	if err := sonic.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode JSON seed: %w", err)
	}
	return d, nil
}

func SeedFromJSON(ctx context.Context, db *gorm.DB, filePath string) (Stats, error) {
	d, err := LoadFile(filePath)
	if err != nil {
		return Stats{}, err
	}
	return Seed(ctx, db, d)
}

// Seed idempotent: data yang sudah ada (per kunci alami) dilewati.
// Kunci: kelas+jenjang, nama fase, kode kurikulum, nama element/tujuan/materi dalam kurikulumnya.
func Seed(ctx context.Context, db *gorm.DB, d Data) (Stats, error) {
	var st Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := seeder{tx: tx, kelas: map[string]uint{}, fases: map[string]uint{}}
		for _, k := range d.Kelas {
			if err := s.kelasRow(k, &st); err != nil {
				return err
			}
		}
		for _, f := range d.Fases {
			if err := s.faseRow(f, &st); err != nil {
				return err
			}
		}
		for _, k := range d.Kurikulums {
			if err := s.kurikulumRow(k, &st); err != nil {
				return err
			}
		}
		return nil
	})
	return st, err
}

type seeder struct {
	tx    *gorm.DB
	kelas map[string]uint // label → id
	fases map[string]uint // nama → id
}

// firstOrCreate: cari dengan where; kalau tidak ada, buat m. created=true kalau baru.
func firstOrCreate[M any](tx *gorm.DB, m *M, query string, args ...interface{}) (bool, error) {
	err := tx.Where(query, args...).Take(m).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, tx.Omit(clause.Associations).Create(m).Error
}

func (s *seeder) kelasRow(k KelasSeed, st *Stats) error {
	j := model.Jenjang(strings.ToUpper(strings.TrimSpace(k.Jenjang)))
	if !j.Valid() {
		return fmt.Errorf("kelas %q: jenjang %q tidak valid", k.Kelas, k.Jenjang)
	}
	m := &model.KelasModel{KelasLabel: strings.TrimSpace(k.Kelas), KelasJenjang: j}
	created, err := firstOrCreate(s.tx, m, "kelas_label = ? AND kelas_jenjang = ?", m.KelasLabel, j)
	if err != nil {
		return fmt.Errorf("seed kelas %q: %w", k.Kelas, err)
	}
	if created {
		st.Kelas++
	}
	s.kelas[m.KelasLabel] = m.KelasID
	return nil
}

func (s *seeder) kelasID(label string) (*uint, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	id, ok := s.kelas[label]
	if !ok {
		return nil, fmt.Errorf("kelas %q tidak ada di data seed", label)
	}
	return &id, nil
}

func (s *seeder) faseID(nama string) (*uint, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, nil
	}
	id, ok := s.fases[nama]
	if !ok {
		return nil, fmt.Errorf("fase %q tidak ada di data seed", nama)
	}
	return &id, nil
}

func (s *seeder) faseRow(f FaseSeed, st *Stats) error {
	kelasID, err := s.kelasID(f.Kelas)
	if err != nil {
		return err
	}
	m := &model.FaseModel{FaseNama: strings.TrimSpace(f.Fase), FaseDeskripsi: f.Deskripsi, FaseKelasID: kelasID}
	created, err := firstOrCreate(s.tx, m, "fase_nama = ?", m.FaseNama)
	if err != nil {
		return fmt.Errorf("seed fase %q: %w", f.Fase, err)
	}
	if created {
		st.Fases++
	}
	s.fases[m.FaseNama] = m.FaseID
	return nil
}

func (s *seeder) kurikulumRow(k KurikulumSeed, st *Stats) error {
	kode := strings.TrimSpace(k.Kode)
	if kode == "" {
		kode = helper.Slugify(k.Nama, 255)
	}
	kur := &model.KurikulumModel{KurikulumNama: strings.TrimSpace(k.Nama), KurikulumKode: kode, KurikulumReferensi: k.Referensi}
	created, err := firstOrCreate(s.tx, kur, "kurikulum_kode = ?", kode)
	if err != nil {
		return fmt.Errorf("seed kurikulum %q: %w", k.Nama, err)
	}
	if created {
		st.Kurikulums++
	}

	fases := make([]model.FaseModel, 0, len(k.Fases))
	for _, nama := range k.Fases {
		id, err := s.faseID(nama)
		if err != nil {
			return err
		}
		if id != nil {
			fases = append(fases, model.FaseModel{FaseID: *id})
		}
	}
	if len(fases) > 0 {
		// Append tidak menduplikasi baris join yang sudah ada
		if err := s.tx.Model(kur).Omit("Fases.*").Association("Fases").Append(fases); err != nil {
			return fmt.Errorf("link fase kurikulum %q: %w", k.Nama, err)
		}
	}

	for _, e := range k.Elements {
		el := &model.ElementModel{ElementNama: strings.TrimSpace(e.Nama), ElementDeskripsi: e.Deskripsi, ElementKurikulumID: &kur.KurikulumID}
		created, err := firstOrCreate(s.tx, el, "element_nama = ? AND element_kurikulum_id = ?", el.ElementNama, kur.KurikulumID)
		if err != nil {
			return fmt.Errorf("seed element %q: %w", e.Nama, err)
		}
		if created {
			st.Elements++
		}
	}

	byFlow := map[string]uint{}
	for _, t := range k.Tujuan {
		tp := &model.TujuanPembelajaranModel{
			TujuanNama:        strings.TrimSpace(t.Nama),
			TujuanFlowNumber:  strings.TrimSpace(t.FlowNumber),
			TujuanKurikulumID: &kur.KurikulumID,
		}
		created, err := firstOrCreate(s.tx, tp, "tujuan_nama = ? AND tujuan_kurikulum_id = ?", tp.TujuanNama, kur.KurikulumID)
		if err != nil {
			return fmt.Errorf("seed tujuan %q: %w", t.Nama, err)
		}
		if created {
			st.Tujuan++
		}
		byFlow[tp.TujuanFlowNumber] = tp.TujuanID
	}

	for _, ms := range k.Materis {
		if err := s.materiRow(kur, ms, byFlow, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) materiRow(kur *model.KurikulumModel, ms MateriSeed, byFlow map[string]uint, st *Stats) error {
	lang := model.ProgrammingLanguage(strings.TrimSpace(ms.BahasaPemrograman))
	if !lang.Valid() {
		return fmt.Errorf("materi %q: bahasa %q tidak valid", ms.Nama, ms.BahasaPemrograman)
	}
	faseID, err := s.faseID(ms.Fase)
	if err != nil {
		return err
	}
	kelasID, err := s.kelasID(ms.Kelas)
	if err != nil {
		return err
	}
	m := &model.MateriModel{
		MateriNama:              strings.TrimSpace(ms.Nama),
		MateriKurikulumID:       &kur.KurikulumID,
		MateriFaseID:            faseID,
		MateriKelasID:           kelasID,
		MateriBahasaPemrograman: lang,
		MateriJumlahJam:         ms.JumlahJam,
	}
	created, err := firstOrCreate(s.tx, m, "materi_nama = ? AND materi_kurikulum_id = ?", m.MateriNama, kur.KurikulumID)
	if err != nil {
		return fmt.Errorf("seed materi %q: %w", ms.Nama, err)
	}
	if !created {
		return nil
	}
	st.Materis++

	tps := make([]model.TujuanPembelajaranModel, 0, len(ms.Tujuan))
	for _, flow := range ms.Tujuan {
		id, ok := byFlow[strings.TrimSpace(flow)]
		if !ok {
			return fmt.Errorf("materi %q: tujuan dengan flow %q tidak ada", ms.Nama, flow)
		}
		tps = append(tps, model.TujuanPembelajaranModel{TujuanID: id})
	}
	if len(tps) > 0 {
		if err := s.tx.Model(m).Omit("TujuanPembelajaran.*").Association("TujuanPembelajaran").Append(tps); err != nil {
			return fmt.Errorf("link tujuan materi %q: %w", ms.Nama, err)
		}
	}

	for _, it := range ms.Items {
		item := &model.MateriItemModel{
			MateriItemMateriID:  &m.MateriID,
			MateriItemNama:      strings.TrimSpace(it.Nama),
			MateriItemDeskripsi: it.Deskripsi,
			MateriItemQCApprove: it.QCApprove,
		}
		if err := s.tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return fmt.Errorf("seed materi item %q: %w", it.Nama, err)
		}
		st.Items++
	}
	return nil
}
