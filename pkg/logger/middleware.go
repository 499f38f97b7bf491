package logger

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reelmedia/reel/pkg/interfaces"
)

// Middleware returns a gin middleware that logs every HTTP request
// with its route, status and duration.
func Middleware(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Add logger to request context
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), logger))

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		fields := []interfaces.Field{
			interfaces.String("method", c.Request.Method),
			interfaces.String("route", route),
			interfaces.Int("status", status),
			interfaces.Int64("duration_ms", duration.Milliseconds()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, interfaces.String("errors", c.Errors.String()))
		}

		if status >= 500 {
			logger.Error("HTTP request failed", fields...)
		} else {
			logger.Info("HTTP request completed", fields...)
		}
	}
}
