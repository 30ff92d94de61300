package services

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"

	apperrors "guaranihost/errors"
	"guaranihost/models"
)

// DecodeSession lee el usuario y el rol del payload del token. La firma no
// se verifica aquí: el token solo sirve para mostrar datos y para
// reenviarlo a los colaboradores, que sí lo validan.
func DecodeSession(tokenString, sessionID string) (models.Session, error) {
	session := models.Session{ID: sessionID}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return session, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return session, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No se pudo decodificar el token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return session, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No se pudo leer el token", err)
	}
	if err := claimsMap.Valid(); err != nil {
		return session, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token vencido", err)
	}

	claims := map[string]interface{}(claimsMap)
	if info, ok := claimsMap["userinfo"].(map[string]interface{}); ok {
		claims = info
	}

	userID := firstClaim(claims, "userid", "userId", "id", "_id", "sub")
	if userID == "" {
		return session, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "El token no tiene el id del usuario", nil)
	}

	session.Token = tokenString
	session.UserID = userID
	session.Role = firstClaim(claims, "role")
	return session, nil
}

func firstClaim(claims map[string]interface{}, names ...string) string {
	for _, name := range names {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

func errNoSession() error {
	return apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Debes iniciar sesión para continuar", apperrors.ErrNoSession)
}
