package helper

import (
	"context"
	"testing"

	"kurikulum_backend/internals/features/kurikulum/model"
	"kurikulum_backend/internals/features/kurikulum/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Kurikulum Merdeka", 0, "kurikulum-merdeka"},
		{"  Kurikulum   2013 (Revisi) ", 0, "kurikulum-2013-revisi"},
		{"Éducation Générale", 0, "education-generale"},
		{"---", 0, ""},
		{"abcdef ghij", 6, "abcdef"},
		{"abcde fghij", 6, "abcde"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, tc.max), tc.in)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	unique := func(excludeID uint) string {
		t.Helper()
		s, err := EnsureUniqueSlug(ctx, db, "merdeka", "kurikulums", "kurikulum_kode", "kurikulum_id", excludeID)
		require.NoError(t, err)
		return s
	}

	assert.Equal(t, "merdeka", unique(0))

	first := &model.KurikulumModel{KurikulumNama: "Merdeka", KurikulumKode: "merdeka"}
	require.NoError(t, db.Create(first).Error)
	assert.Equal(t, "merdeka-2", unique(0))
	assert.Equal(t, "merdeka", unique(first.KurikulumID))

	require.NoError(t, db.Create(&model.KurikulumModel{KurikulumNama: "x", KurikulumKode: "merdeka-7"}).Error)
	require.NoError(t, db.Create(&model.KurikulumModel{KurikulumNama: "y", KurikulumKode: "merdeka-lama"}).Error)
	assert.Equal(t, "merdeka-8", unique(0))
}
