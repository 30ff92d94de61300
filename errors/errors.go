package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeCapacity      ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeImageLimit    ErrorCode = "IMAGE_LIMIT"
	ErrCodeImageSize     ErrorCode = "IMAGE_TOO_LARGE"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeNotAvailable     ErrorCode = "NOT_AVAILABLE"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"

	// Collaborator errors
	ErrCodeUpstream      ErrorCode = "UPSTREAM_ERROR"
	ErrCodeNotConfigured ErrorCode = "NOT_CONFIGURED"
	ErrCodeUploadFailed  ErrorCode = "UPLOAD_FAILED"
)

// AppError define un error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Status  int
	Fields  map[string]string // errores por campo de un formulario
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un nuevo AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewUpstreamError envuelve una respuesta no exitosa de un servicio colaborador
func NewUpstreamError(status int, message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// NewValidationError agrupa los errores por campo de un formulario
func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// IsAppError verifica si el error es un AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError obtiene el AppError de la cadena de errores
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus devuelve el código HTTP que corresponde al error
func HTTPStatus(err error) int {
	appErr := GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidOperation, ErrCodeNotAvailable:
		return http.StatusConflict
	case ErrCodeUpstream:
		if appErr.Status == http.StatusNotFound || appErr.Status == http.StatusUnauthorized || appErr.Status == http.StatusForbidden {
			return appErr.Status
		}
		return http.StatusBadGateway
	case ErrCodeNotConfigured, ErrCodeUploadFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

var (
	// Booking errors
	ErrBookingNotEditable    = errors.New("booking cannot be modified in its current state")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled in its current state")

	// Resource errors
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceNotAvailable = errors.New("resource not available")

	// Session errors
	ErrNoSession = errors.New("no active session")
)
