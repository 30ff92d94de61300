package dto

import "guaranihost/models"

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse respuesta del servicio de autenticación al iniciar sesión
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SessionView datos del usuario para la barra de navegación
type SessionView struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
	DisplayName   string       `json:"displayName,omitempty"`
	IsHost        bool         `json:"isHost"`
}
