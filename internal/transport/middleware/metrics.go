package middleware

import (
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// Metrics records latency per route template. Unmatched paths share one
// label to keep the cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
