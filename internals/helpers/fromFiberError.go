package helper

import (
	"errors"

	"kurikulum_backend/internals/helpers/logger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorHandler dipasang di fiber.Config. Semua error handler/service berakhir di sini:
// *fiber.Error → status aslinya, FieldErrors → 400 per field, record not found → 404, sisanya 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			return JsonValidationError(c, fieldErrs)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		log.Error("unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("reqid"),
			"err", err,
		)
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
