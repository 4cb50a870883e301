package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kurikulum_backend/internals/configs"
	database "kurikulum_backend/internals/databases"
	helper "kurikulum_backend/internals/helpers"
	"kurikulum_backend/internals/helpers/logger"
	middlewares "kurikulum_backend/internals/middlewares"
	routes "kurikulum_backend/internals/route"
	"kurikulum_backend/internals/seeds"
)

// Pemakaian:
//
//	kurikulum_backend           → jalankan server (default)
//	kurikulum_backend migrate   → AutoMigrate lalu keluar
//	kurikulum_backend seed      → migrate + seed data awal lalu keluar
func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer lg.Sync()

	helper.SetMediaBaseURL(cfg.MediaBaseURL)

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, lg)
	if err != nil {
		lg.Fatal("db connect failed", "err", err)
	}
	database.TunePool(db, lg)
	defer func() { _ = database.Close(db) }()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			lg.Fatal("migrate failed", "err", err)
		}
		lg.Info("✅ migrate selesai")
	case "seed":
		if err := database.Migrate(db); err != nil {
			lg.Fatal("migrate failed", "err", err)
		}
		if err := seeds.RunAllSeeds(context.Background(), db, lg, cfg.SeedFile); err != nil {
			lg.Fatal("seed failed", "err", err)
		}
	case "serve":
		if cfg.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				lg.Fatal("migrate failed", "err", err)
			}
		}
		serve(cfg, db, lg)
	default:
		fmt.Fprintf(os.Stderr, "perintah tidak dikenal: %q (serve|migrate|seed)\n", cmd)
		os.Exit(2)
	}
}

func serve(cfg configs.Config, db *gorm.DB, lg *logger.Logger) {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler(lg),
		BodyLimit:             20 * 1024 * 1024, // import CSV
	})

	middlewares.SetupMiddlewares(app, cfg, lg)

	database.WarmUpQueries(db, lg)

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg, lg)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		lg.Info("✅ Listening", "port", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			lg.Fatal("server error", "err", err)
		}
	}()

	// graceful shutdown; pool DB ditutup oleh defer di main
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		lg.Warn("shutdown error", "err", err)
	}
}
