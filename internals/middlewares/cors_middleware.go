// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari ALLOWED_ORIGINS.
// Origin "*" tidak boleh digabung dengan credentials, jadi credentials dimatikan.
func CorsMiddleware(origins []string) fiber.Handler {
	cleaned := make([]string, 0, len(origins))
	wildcard := false
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			wildcard = true
		}
		cleaned = append(cleaned, o)
	}
	if len(cleaned) == 0 {
		cleaned = []string{"*"}
		wildcard = true
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(cleaned, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID, Content-Disposition",
		AllowCredentials: !wildcard,
	})
}
