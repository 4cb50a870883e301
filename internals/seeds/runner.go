package seeds

import (
	"context"

	"kurikulum_backend/internals/helpers/logger"
	kurikulum "kurikulum_backend/internals/seeds/kurikulum"

	"gorm.io/gorm"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, log *logger.Logger, seedFile string) error {
	//* Kurikulum
	log.Info("seeding kurikulum", "file", seedFile)
	st, err := kurikulum.SeedFromJSON(ctx, db, seedFile)
	if err != nil {
		return err
	}
	log.Info("seed kurikulum selesai",
		"kelas", st.Kelas,
		"fases", st.Fases,
		"kurikulums", st.Kurikulums,
		"elements", st.Elements,
		"tujuan", st.Tujuan,
		"materis", st.Materis,
		"items", st.Items,
	)
	return nil
}
