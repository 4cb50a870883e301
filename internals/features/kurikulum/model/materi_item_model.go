package model

import "time"

/* ===========================
   MATERI ITEM (child of materi)
   =========================== */
type MateriItemModel struct {
	MateriItemID          uint      `gorm:"column:materi_item_id;primaryKey;autoIncrement"`
	MateriItemMateriID    *uint     `gorm:"column:materi_item_materi_id;index"`
	MateriItemQCApprove   bool      `gorm:"column:materi_item_qc_approve;not null;default:false"`
	MateriItemNama        string    `gorm:"column:materi_item_nama;type:varchar(255)"`
	MateriItemDeskripsi   *string   `gorm:"column:materi_item_deskripsi;type:text"`
	MateriItemModuleQC    *string   `gorm:"column:materi_item_module_qc;type:varchar(255)"`
	MateriItemModuleQCPDF *string   `gorm:"column:materi_item_module_qc_pdf;type:varchar(255)"`
	MateriItemCreatedAt   time.Time `gorm:"column:materi_item_created_at;autoCreateTime;index"`

	Materi *MateriModel           `gorm:"foreignKey:MateriItemMateriID;references:MateriID"`
	Videos []MateriItemVideoModel `gorm:"foreignKey:VideoMateriItemID;references:MateriItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (MateriItemModel) TableName() string { return "materi_items" }

type MateriItemVideoModel struct {
	VideoID           uint      `gorm:"column:video_id;primaryKey;autoIncrement"`
	VideoMateriItemID *uint     `gorm:"column:video_materi_item_id;index"`
	VideoPath         *string   `gorm:"column:video_path;type:varchar(255)"`
	VideoCreatedAt    time.Time `gorm:"column:video_created_at;autoCreateTime;index"`

	MateriItem *MateriItemModel `gorm:"foreignKey:VideoMateriItemID;references:MateriItemID"`
}

func (MateriItemVideoModel) TableName() string { return "materi_item_videos" }
