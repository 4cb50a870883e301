package model

import "time"

type MateriModel struct {
	MateriID                uint                `gorm:"column:materi_id;primaryKey;autoIncrement"`
	MateriNama              string              `gorm:"column:materi_nama;type:varchar(255)"`
	MateriKurikulumID       *uint               `gorm:"column:materi_kurikulum_id;index"`
	MateriFaseID            *uint               `gorm:"column:materi_fase_id;index"`
	MateriKelasID           *uint               `gorm:"column:materi_kelas_id;index"`
	MateriBahasaPemrograman ProgrammingLanguage `gorm:"column:materi_bahasa_pemrograman;type:varchar(32)"`
	MateriJumlahJam         int                 `gorm:"column:materi_jumlah_jam;not null;default:0"`
	MateriRPP               *string             `gorm:"column:materi_rpp;type:varchar(255)"`
	MateriCreatedAt         time.Time           `gorm:"column:materi_created_at;autoCreateTime;index"`

	// Relations
	Kurikulum          *KurikulumModel           `gorm:"foreignKey:MateriKurikulumID;references:KurikulumID"`
	Fase               *FaseModel                `gorm:"foreignKey:MateriFaseID;references:FaseID"`
	Kelas              *KelasModel               `gorm:"foreignKey:MateriKelasID;references:KelasID"`
	TujuanPembelajaran []TujuanPembelajaranModel `gorm:"many2many:materi_tujuan_pembelajarans;joinForeignKey:MateriID;joinReferences:TujuanID"`
	Items              []MateriItemModel         `gorm:"foreignKey:MateriItemMateriID;references:MateriID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (MateriModel) TableName() string { return "materis" }

// Join table Materi <-> TujuanPembelajaran.
const MateriTujuanTable = "materi_tujuan_pembelajarans"
