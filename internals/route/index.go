// file: internals/route/index.go
package routes

import (
	"time"

	"kurikulum_backend/internals/configs"
	kurikulumRoute "kurikulum_backend/internals/features/kurikulum/route"
	"kurikulum_backend/internals/helpers/logger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, log *logger.Logger) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg)

	// ===================== PUBLIC =====================
	// Dipasang di root (kompatibel dengan klien lama) dan di /api.
	log.Info("mounting public kurikulum routes", "prefix", "/")
	kurikulumRoute.KurikulumPublicRoutes(app, db, cfg.PageSize, cfg.MaxPageSize)

	log.Info("mounting public kurikulum routes", "prefix", "/api")
	kurikulumRoute.KurikulumPublicRoutes(app.Group("/api"), db, cfg.PageSize, cfg.MaxPageSize)

	// ===================== ADMIN =====================
	log.Info("mounting admin kurikulum routes", "prefix", "/api/admin")
	kurikulumRoute.KurikulumAdminRoutes(app.Group("/api/admin"), db)
}
