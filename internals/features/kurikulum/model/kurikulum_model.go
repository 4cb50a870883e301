package model

import "time"

/* ===========================
   KURIKULUM (parent)
   =========================== */
type KurikulumModel struct {
	KurikulumID        uint      `gorm:"column:kurikulum_id;primaryKey;autoIncrement"`
	KurikulumNama      string    `gorm:"column:kurikulum_nama;type:varchar(255)"`
	KurikulumKode      string    `gorm:"column:kurikulum_kode;type:varchar(255)"`
	KurikulumReferensi *string   `gorm:"column:kurikulum_referensi;type:text"`
	KurikulumCreatedAt time.Time `gorm:"column:kurikulum_created_at;autoCreateTime;index"`

	// Relations
	Fases               []FaseModel               `gorm:"many2many:kurikulum_fases;joinForeignKey:KurikulumID;joinReferences:FaseID"`
	Elements            []ElementModel            `gorm:"foreignKey:ElementKurikulumID;references:KurikulumID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Materis             []MateriModel             `gorm:"foreignKey:MateriKurikulumID;references:KurikulumID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TujuanPembelajarans []TujuanPembelajaranModel `gorm:"foreignKey:TujuanKurikulumID;references:KurikulumID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (KurikulumModel) TableName() string { return "kurikulums" }

// Join table Kurikulum <-> Fase.
const KurikulumFaseTable = "kurikulum_fases"
