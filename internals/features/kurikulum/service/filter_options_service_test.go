package service_test

import (
	"context"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/service"
	"kurikulum_backend/internals/features/kurikulum/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faseNames(fs []model.FaseModel) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.FaseNama)
	}
	return out
}

func TestLoadFilterOptions(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	kelas := testutil.SeedKelas(t, db, "Kelas 1", model.JenjangSD)
	a := testutil.SeedFase(t, db, "Fase A", kelas)
	b := testutil.SeedFase(t, db, "Fase B", nil)
	testutil.SeedFase(t, db, "Fase C", nil)
	merdeka := testutil.SeedKurikulum(t, db, "Merdeka", a, b)
	testutil.SeedKurikulum(t, db, "K13")

	t.Run("no kurikulum id returns all fases", func(t *testing.T) {
		opts, err := service.LoadFilterOptions(ctx, db, nil)
		require.NoError(t, err)
		assert.Len(t, opts.Kurikulums, 2)
		assert.Equal(t, []string{"Fase A", "Fase B", "Fase C"}, faseNames(opts.Fases))
		require.NotNil(t, opts.Fases[0].Kelas)
		assert.Equal(t, model.JenjangSD, opts.Fases[0].Kelas.KelasJenjang)
	})

	t.Run("existing kurikulum returns linked fases", func(t *testing.T) {
		opts, err := service.LoadFilterOptions(ctx, db, &merdeka.KurikulumID)
		require.NoError(t, err)
		assert.Len(t, opts.Kurikulums, 2)
		assert.Equal(t, []string{"Fase A", "Fase B"}, faseNames(opts.Fases))
	})

	t.Run("unknown kurikulum returns empty fases", func(t *testing.T) {
		missing := uint(9999)
		opts, err := service.LoadFilterOptions(ctx, db, &missing)
		require.NoError(t, err)
		assert.Len(t, opts.Kurikulums, 2)
		assert.NotNil(t, opts.Fases)
		assert.Empty(t, opts.Fases)
	})
}
