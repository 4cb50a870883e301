package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// =======================
// CONFIG
// =======================
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"3000"`

	// DATABASE_URL menang kalau diisi; kalau kosong DSN dirakit dari DB_*.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"kurikulum"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3001,http://localhost:5173"`
	MediaBaseURL   string        `env:"MEDIA_BASE_URL" envDefault:"/media/"`
	PageSize       int           `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize    int           `env:"MAX_PAGE_SIZE" envDefault:"100"`
	RateLimitMax   int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	TimeZone       string        `env:"TZ_LOG" envDefault:"Asia/Jakarta"`
	SeedFile       string        `env:"SEED_FILE" envDefault:"internals/seeds/kurikulum/data_kurikulum.json"`
}

// =======================
// ENV LOADER
// =======================

// LoadEnv memuat .env (kalau ada) lalu parse ENV ke Config.
func LoadEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	}
	return Parse()
}

// Parse hanya membaca ENV proses, tanpa .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE harus >= 1, dapat %d", c.PageSize)
	}
	if c.MaxPageSize < c.PageSize {
		c.MaxPageSize = c.PageSize
	}
	if !strings.HasSuffix(c.MediaBaseURL, "/") {
		c.MediaBaseURL += "/"
	}
	return nil
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

// DSN postgres. Password di-escape supaya karakter spesial aman.
func (c Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "kurikulum_backend")
	u.RawQuery = q.Encode()
	return u.String()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
