package database

import (
	"fmt"

	"kurikulum_backend/internals/features/kurikulum/model"

	"gorm.io/gorm"
)

// Migrate membuat/menyesuaikan semua tabel katalog kurikulum (termasuk join table M2M).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
