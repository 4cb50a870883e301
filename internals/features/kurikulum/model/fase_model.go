package model

import "time"

type FaseModel struct {
	FaseID        uint      `gorm:"column:fase_id;primaryKey;autoIncrement"`
	FaseNama      string    `gorm:"column:fase_nama;type:varchar(255);not null;uniqueIndex:uq_fases_nama"`
	FaseDeskripsi *string   `gorm:"column:fase_deskripsi;type:text"`
	FaseKelasID   *uint     `gorm:"column:fase_kelas_id;index"`
	FaseCreatedAt time.Time `gorm:"column:fase_created_at;autoCreateTime;index"`

	// Relations
	Kelas   *KelasModel   `gorm:"foreignKey:FaseKelasID;references:KelasID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Materis []MateriModel `gorm:"foreignKey:MateriFaseID;references:FaseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (FaseModel) TableName() string { return "fases" }
