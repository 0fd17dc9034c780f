package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/logger"
)

// RequestLogger logs method, path, status and latency for every request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
