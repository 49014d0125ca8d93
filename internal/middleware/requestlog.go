package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tuchonga/tuchonga-api/internal/logger"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}
