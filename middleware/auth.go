package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
)

const sessionKey = "session"

// OptionalAuth lee el token Bearer si viene y deja la sesión en el
// contexto. Un token ilegible o vencido se trata como visitante anónimo.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{ID: SessionID(c)}

		if tokenString := bearerToken(c); tokenString != "" {
			if decoded, err := services.DecodeSession(tokenString, session.ID); err == nil {
				session = decoded
				session.ID = UserSessionID(session.UserID, session.ID)
				c.Set(sessionIDKey, session.ID)
			}
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// UserSessionID ata el id que manda el cliente al usuario del token, así
// otro usuario que conozca el mismo id no comparte buffer, filtros ni avisos
func UserSessionID(userID, sessionID string) string {
	if userID == "" {
		return sessionID
	}
	return "u:" + userID + ":" + sessionID
}

// bearerToken lee el header Authorization. El navegador no puede poner
// headers al abrir un websocket, por eso se acepta también ?token=.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

// RequireAuth corta la petición si no hay usuario. Con roles, además
// exige que el rol del token sea uno de ellos.
func RequireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if !session.Authenticated() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == session.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// CurrentSession devuelve la sesión de la petición; vacía si no pasó por
// OptionalAuth
func CurrentSession(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Session{ID: SessionID(c)}
}
