package middleware

import (
	"strconv"
	"time"

	"transportpro/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template, so
// /api/trips/TRP001 and /api/trips/TRP002 share one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
