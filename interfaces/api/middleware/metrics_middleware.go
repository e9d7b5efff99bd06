package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/pkg/metrics"
)

// MetricsMiddleware records request count and duration per route pattern.
func MetricsMiddleware(m *metrics.AppMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.RecordHTTPRequest(c.UserContext(), c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
