package service

import (
	"context"
	"errors"
	"fmt"

	"kurikulum_backend/internals/features/kurikulum/model"

	"gorm.io/gorm"
)

type FilterOptions struct {
	Kurikulums []model.KurikulumModel
	Fases      []model.FaseModel
}

// LoadFilterOptions: semua kurikulum + fase.
// kurikulumID nil → semua fase; kurikulum tidak ditemukan → fase kosong.
func LoadFilterOptions(ctx context.Context, db *gorm.DB, kurikulumID *uint) (FilterOptions, error) {
	var out FilterOptions
	tx := db.WithContext(ctx)

	if err := tx.Order("kurikulum_id ASC").Find(&out.Kurikulums).Error; err != nil {
		return out, fmt.Errorf("list kurikulums: %w", err)
	}

	switch {
	case kurikulumID == nil:
		if err := tx.Preload("Kelas").Order("fase_id ASC").Find(&out.Fases).Error; err != nil {
			return out, fmt.Errorf("list fases: %w", err)
		}
	default:
		var kur model.KurikulumModel
		err := tx.Preload("Fases", func(q *gorm.DB) *gorm.DB {
			return q.Order("fases.fase_id ASC")
		}).Preload("Fases.Kelas").First(&kur, "kurikulum_id = ?", *kurikulumID).Error
		switch {
		case err == nil:
			out.Fases = kur.Fases
		case errors.Is(err, gorm.ErrRecordNotFound):
			out.Fases = []model.FaseModel{}
		default:
			return out, fmt.Errorf("load kurikulum fases: %w", err)
		}
	}
	if out.Fases == nil {
		out.Fases = []model.FaseModel{}
	}
	return out, nil
}
