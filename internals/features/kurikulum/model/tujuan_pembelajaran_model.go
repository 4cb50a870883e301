package model

import "time"

type TujuanPembelajaranModel struct {
	TujuanID          uint      `gorm:"column:tujuan_id;primaryKey;autoIncrement"`
	TujuanNama        string    `gorm:"column:tujuan_nama;type:varchar(255)"`
	TujuanFlowNumber  string    `gorm:"column:tujuan_flow_number;type:varchar(255)"`
	TujuanKurikulumID *uint     `gorm:"column:tujuan_kurikulum_id;index"`
	TujuanCreatedAt   time.Time `gorm:"column:tujuan_created_at;autoCreateTime;index"`

	Kurikulum *KurikulumModel `gorm:"foreignKey:TujuanKurikulumID;references:KurikulumID"`
}

func (TujuanPembelajaranModel) TableName() string { return "tujuan_pembelajarans" }
