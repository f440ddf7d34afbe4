package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request with status, latency, and the enriched
// context fields.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latencyMs", time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			slog.ErrorContext(ctx, "request failed", attrs...)
			return
		}
		slog.InfoContext(ctx, "request handled", attrs...)
	}
}
