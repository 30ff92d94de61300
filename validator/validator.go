package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// los errores se reportan con el nombre del campo en el JSON
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = fld.Tag.Get("form")
			}
			return name
		})
	})
	return validate
}

// ValidateStruct aplica las etiquetas `validate` de un DTO y devuelve los
// errores con la misma forma que los del formulario. nil si es válido.
func ValidateStruct(v any) FormErrors {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FormErrors{"_": err.Error()}
	}
	errs := FormErrors{}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Correo electrónico inválido"
	case "gt":
		return fmt.Sprintf("Debe ser mayor a %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("Debe ser como mínimo %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("Debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", fe.Param())
	case "datetime":
		return "Fecha inválida, use el formato aaaa-mm-dd"
	default:
		return "Valor inválido"
	}
}
