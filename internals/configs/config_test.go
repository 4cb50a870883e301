package configs

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com/media")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://cdn.example.com/media/", cfg.MediaBaseURL)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
}

func TestParseRejectsZeroPageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")
	_, err := Parse()
	assert.Error(t, err)
}

func TestMaxPageSizeNeverBelowPageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "50")
	t.Setenv("MAX_PAGE_SIZE", "20")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxPageSize)
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "p@ss:w/rd",
		DBName: "kurikulum", DBSSLMode: "disable",
	}
	u, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", pw)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/kurikulum", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))

	cfg.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", cfg.DSN())
}
