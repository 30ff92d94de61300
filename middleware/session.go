package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	sessionIDKey  = "sessionId"
)

// SessionMiddleware asigna un id de sesión si el cliente no envía uno.
// El id identifica el buffer de imágenes, los filtros guardados y la
// conexión websocket de avisos.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = c.Query("sessionId")
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(sessionIDKey, sessionID)
		c.Writer.Header().Set(SessionHeader, sessionID)

		c.Next()
	}
}

// SessionID devuelve el id asignado por SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
