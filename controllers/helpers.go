package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "guaranihost/errors"
	"guaranihost/response"
	"guaranihost/validator"
)

const (
	msgInvalidRequest = "Solicitud inválida"
	msgNetwork        = "No pudimos conectar con el servidor. Intenta de nuevo en unos minutos."
)

// handleError traduce un error de los servicios a la respuesta. Si falla
// un colaborador la pantalla recibe fallback (lista vacía) y un mensaje.
func handleError(c *gin.Context, err error, fallback interface{}) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	if len(appErr.Fields) > 0 {
		response.ValidationError(c, appErr.Message, appErr.Fields)
		return
	}

	status := apperrors.HTTPStatus(err)
	switch appErr.Code {
	case apperrors.ErrCodeUpstream:
		msg := appErr.Message
		if appErr.Status == 0 || appErr.Status >= http.StatusInternalServerError {
			msg = msgNetwork
		}
		response.UpstreamError(c, status, msg, fallback)
	case apperrors.ErrCodeUnauthorized:
		response.Unauthorized(c)
	default:
		response.Error(c, status, appErr.Message)
	}
}

// bindQuery lee los parámetros de la URL y aplica las etiquetas validate
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.BadRequest(c, msgInvalidRequest)
		return false
	}
	return validate(c, obj)
}

// bindJSON lee el cuerpo JSON y aplica las etiquetas validate
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.BadRequest(c, msgInvalidRequest)
		return false
	}
	return validate(c, obj)
}

func validate(c *gin.Context, obj interface{}) bool {
	if errs := validator.ValidateStruct(obj); errs != nil {
		response.ValidationError(c, "Revisa los campos marcados", errs)
		return false
	}
	return true
}

func paramIndex(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Índice de imagen inválido")
		return 0, false
	}
	return i, true
}
