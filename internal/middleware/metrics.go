package middleware

import (
	"time"

	"hotel/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency. Unmatched routes share one
// label so random paths cannot blow up cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
