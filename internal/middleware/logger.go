package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/logger"
)

// Logger middleware for logging HTTP requests. It also stores log in the
// request context so handlers pick it up through logger.Ctx.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []logger.Field{
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", statusCode),
			logger.Duration("latency", latency),
			logger.String("client_ip", c.ClientIP()),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, logger.String("route", route))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		l := logger.Ctx(c.Request.Context())
		switch {
		case statusCode >= 500:
			l.Error("request completed", fields...)
		case statusCode >= 400:
			l.Warn("request completed", fields...)
		default:
			l.Info("request completed", fields...)
		}
	}
}
