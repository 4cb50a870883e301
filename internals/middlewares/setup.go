package middlewares

import (
	"kurikulum_backend/internals/configs"
	"kurikulum_backend/internals/helpers/logger"
	accesslog "kurikulum_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// SetupMiddlewares: urutan penting, recovery paling luar.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *logger.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log, cfg.RequestTimeout))
	if !cfg.IsProduction() {
		app.Use(accesslog.LoggerMiddleware(cfg.TimeZone))
	}
	app.Use(CorsMiddleware(cfg.AllowedOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(ImportRateLimiter())
}
