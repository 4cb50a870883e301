package middlewares

import (
	"kurikulum_backend/internals/helpers/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic; error 500 dirender oleh ErrorHandler.
func RecoveryMiddleware(log *logger.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.Locals(RequestIDKey),
				"panic", e,
			)
		},
	})
}
