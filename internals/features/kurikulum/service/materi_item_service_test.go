package service_test

import (
	"context"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/service"
	"kurikulum_backend/internals/features/kurikulum/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMateriItems(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	m1 := testutil.SeedMateri(t, db, testutil.MateriOpts{Nama: "Python"})
	m2 := testutil.SeedMateri(t, db, testutil.MateriOpts{Nama: "Scratch"})
	empty := testutil.SeedMateri(t, db, testutil.MateriOpts{Nama: "Kosong"})

	i1 := testutil.SeedMateriItem(t, db, m1, "Variabel", true)
	i2 := testutil.SeedMateriItem(t, db, m1, "Perulangan", false)
	testutil.SeedMateriItem(t, db, m2, "Sprite", false)
	testutil.SeedVideo(t, db, i1, "kurikulum/videos/var-1.mp4")
	testutil.SeedVideo(t, db, i1, "kurikulum/videos/var-2.mp4")

	items, err := service.ListMateriItems(ctx, db, m1.MateriID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, i1.MateriItemID, items[0].MateriItemID)
	assert.Equal(t, i2.MateriItemID, items[1].MateriItemID)
	require.Len(t, items[0].Videos, 2)
	assert.Equal(t, "kurikulum/videos/var-1.mp4", *items[0].Videos[0].VideoPath)
	assert.Empty(t, items[1].Videos)
	for _, it := range items {
		assert.Equal(t, m1.MateriID, *it.MateriItemMateriID)
	}

	items, err = service.ListMateriItems(ctx, db, empty.MateriID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = service.ListMateriItems(ctx, db, 424242)
	assert.True(t, service.IsNotFound(err))
}
