package middleware

import (
	"time"

	"retrack/internal/pkg/telemetry"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency labelled by route template, not raw path.
func MetricsMiddleware(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
