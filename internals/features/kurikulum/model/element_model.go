package model

import "time"

type ElementModel struct {
	ElementID          uint      `gorm:"column:element_id;primaryKey;autoIncrement"`
	ElementNama        string    `gorm:"column:element_nama;type:varchar(255)"`
	ElementDeskripsi   *string   `gorm:"column:element_deskripsi;type:text"`
	ElementKurikulumID *uint     `gorm:"column:element_kurikulum_id;index"`
	ElementCreatedAt   time.Time `gorm:"column:element_created_at;autoCreateTime;index"`

	Kurikulum *KurikulumModel `gorm:"foreignKey:ElementKurikulumID;references:KurikulumID"`
}

func (ElementModel) TableName() string { return "elements" }
