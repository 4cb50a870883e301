package model

import "time"

type KelasModel struct {
	KelasID        uint      `gorm:"column:kelas_id;primaryKey;autoIncrement"`
	KelasLabel     string    `gorm:"column:kelas_label;type:varchar(255);not null"`
	KelasJenjang   Jenjang   `gorm:"column:kelas_jenjang;type:varchar(16);not null"`
	KelasCreatedAt time.Time `gorm:"column:kelas_created_at;autoCreateTime;index"`

	Materis []MateriModel `gorm:"foreignKey:MateriKelasID;references:KelasID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (KelasModel) TableName() string { return "kelas" }
