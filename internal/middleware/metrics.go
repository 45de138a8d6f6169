package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/metrics"
)

// Metrics records request counts and latencies by route template so
// /food/:date stays a single series
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start).Seconds())
	}
}
