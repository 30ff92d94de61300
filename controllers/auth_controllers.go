package controllers

import (
	"github.com/gin-gonic/gin"

	"guaranihost/dto"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
	"guaranihost/services/logger"
)

// AuthController reenvía el inicio y cierre de sesión al servicio de
// autenticación. El token vuelve al cliente, que lo envía como Bearer.
type AuthController struct {
	Auth   services.AuthAPI
	Logger logger.Logger
}

func NewAuthController(auth services.AuthAPI, log logger.Logger) AuthController {
	if log == nil {
		log = logger.Nop{}
	}
	return AuthController{Auth: auth, Logger: log}
}

// Login godoc
// @Summary Inicia sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "credenciales"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var in dto.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	auth, err := a.Auth.Login(c.Request.Context(), in)
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.SuccessWithMessage(c, "Bienvenido", gin.H{
		"token":   auth.Token,
		"session": sessionView(&auth.User),
	})
}

// Logout siempre termina la sesión local aunque el servicio falle
func (a AuthController) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session.Authenticated() {
		if err := a.Auth.Logout(services.WithToken(c.Request.Context(), session.Token)); err != nil {
			a.Logger.Warn("cerrar sesión de %s: %v", session.UserID, err)
		}
	}
	response.SuccessWithMessage(c, "Sesión cerrada", sessionView(nil))
}

// Me datos del usuario para la barra de navegación
func (a AuthController) Me(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if !session.Authenticated() {
		response.Success(c, sessionView(nil))
		return
	}
	user, err := a.Auth.CurrentUser(services.WithToken(c.Request.Context(), session.Token))
	if err != nil {
		handleError(c, err, sessionView(nil))
		return
	}
	response.Success(c, sessionView(user))
}

func sessionView(user *models.User) dto.SessionView {
	if user == nil {
		return dto.SessionView{}
	}
	name := user.FullName()
	if name == "" {
		name = user.Email
	}
	return dto.SessionView{
		Authenticated: true,
		User:          user,
		DisplayName:   name,
		IsHost:        user.IsHost(),
	}
}
