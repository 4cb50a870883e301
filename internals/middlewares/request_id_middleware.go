package middlewares

import (
	"context"
	"time"

	"kurikulum_backend/internals/helpers/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	RequestIDKey    = "reqid"
)

// RequestContext: Request-ID + timing + batas waktu context untuk query DB.
// Service membaca deadline lewat c.UserContext().
func RequestContext(log *logger.Logger, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(RequestIDKey, id)

		start := time.Now()
		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}

		// error dirender di sini supaya status yang dicatat = status yang dikirim
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Debug("request",
			"id", id,
			"method", c.Method(),
			"url", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"dur", time.Since(start).String(),
		)
		return nil
	}
}
