package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"guaranihost/services/logger"
)

// RequestLogger registra método, ruta, estado y latencia de cada petición
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			log.Error("%s %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency)
		case status >= 400:
			log.Warn("%s %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency)
		default:
			log.Info("%s %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency)
		}
	}
}
