package service

import (
	"context"
	"errors"
	"fmt"

	"kurikulum_backend/internals/features/kurikulum/model"

	"gorm.io/gorm"
)

// ListMateriItems: semua item milik materi (beserta video), urut id.
// Materi tidak ada → gorm.ErrRecordNotFound.
func ListMateriItems(ctx context.Context, db *gorm.DB, materiID uint) ([]model.MateriItemModel, error) {
	tx := db.WithContext(ctx)

	var exists int64
	if err := tx.Model(&model.MateriModel{}).Where("materi_id = ?", materiID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("check materi: %w", err)
	}
	if exists == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var items []model.MateriItemModel
	err := tx.Where("materi_item_materi_id = ?", materiID).
		Preload("Videos", func(q *gorm.DB) *gorm.DB { return q.Order("video_id ASC") }).
		Order("materi_item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list materi items: %w", err)
	}
	return items, nil
}

// IsNotFound kecil saja, biar controller tidak perlu import gorm.
func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
