package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response define la estructura de la respuesta
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define la estructura de paginación
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success devuelve una respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

// Created devuelve una respuesta 201 con un mensaje para el usuario
func Created(c *gin.Context, mess string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: mess,
		Data: data,
	})
}

// SuccessWithMessage devuelve una respuesta exitosa con un mensaje propio
func SuccessWithMessage(c *gin.Context, mess string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: mess,
		Data: data,
	})
}

// SuccessWithPagination devuelve una respuesta exitosa con paginación
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error devuelve una respuesta de error con el código HTTP indicado
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError devuelve una respuesta de error del servidor
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Error del servidor",
	})
}

// Unauthorized devuelve una respuesta de no autenticado
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Debes iniciar sesión para continuar",
	})
}

// NotFound devuelve una respuesta de recurso no encontrado
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "No encontrado",
	})
}

// ValidationError devuelve los errores de validación por campo
func ValidationError(c *gin.Context, message string, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:   0,
		Mess:   message,
		Errors: fieldErrors,
	})
}

// BadRequest devuelve una respuesta de solicitud incorrecta
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict devuelve una respuesta 409
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// UpstreamError se usa cuando falla un servicio colaborador; la pantalla
// recibe datos vacíos en lugar de un error sin cuerpo.
func UpstreamError(c *gin.Context, status int, message string, fallback interface{}) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
		Data: fallback,
	})
}

// Forbidden devuelve una respuesta 403
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "No tienes permiso para esta acción",
	})
}
