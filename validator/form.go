package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"guaranihost/constants"
	apperrors "guaranihost/errors"
)

// FormMode distingue el alta de la edición de una propiedad
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeEdit   FormMode = "edit"
)

// FormErrors campo -> mensaje para el usuario
type FormErrors map[string]string

// Add registra el primer error de un campo
func (e FormErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// FormResult resultado de validar un formulario
type FormResult struct {
	IsValid bool       `json:"isValid"`
	Errors  FormErrors `json:"errors"`
}

// PropertyForm son los campos tal como llegan del formulario
type PropertyForm struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	PricePerNight string   `json:"pricePerNight"`
	MaxGuests     string   `json:"maxGuests"`
	Amenities     []string `json:"amenities"`
}

// ImageCount cuántas imágenes nuevas (en preparación) y ya publicadas hay
type ImageCount struct {
	New      int
	Existing int
}

// ValidatePropertyForm revisa todos los campos y junta todos los errores
func ValidatePropertyForm(form PropertyForm, mode FormMode, images ImageCount) FormResult {
	errs := FormErrors{}

	if strings.TrimSpace(form.Title) == "" {
		errs.Add("title", "El título es obligatorio")
	}

	desc := strings.TrimSpace(form.Description)
	switch {
	case desc == "":
		errs.Add("description", "La descripción es obligatoria")
	case utf8.RuneCountInString(desc) < constants.MinDescriptionLength:
		errs.Add("description", fmt.Sprintf("La descripción debe tener al menos %d caracteres", constants.MinDescriptionLength))
	}

	if strings.TrimSpace(form.Address) == "" {
		errs.Add("address", "La dirección es obligatoria")
	}
	if strings.TrimSpace(form.City) == "" {
		errs.Add("city", "La ciudad es obligatoria")
	}

	if _, ok := ParsePrice(form.PricePerNight); !ok {
		errs.Add("pricePerNight", "El precio por noche debe ser mayor a 0")
	}

	if _, ok := ParseGuests(form.MaxGuests); !ok {
		errs.Add("maxGuests", fmt.Sprintf("La cantidad de huéspedes debe estar entre %d y %d", constants.MinGuests, constants.MaxGuests))
	}

	switch mode {
	case ModeEdit:
		total := images.New + images.Existing
		if total < 1 {
			errs.Add("images", "Debe haber al menos una imagen")
		} else if total > constants.MaxImages {
			errs.Add("images", fmt.Sprintf("Puedes tener como máximo %d imágenes", constants.MaxImages))
		}
	default:
		if images.New < 1 {
			errs.Add("images", "Debes subir al menos una imagen")
		}
	}

	return FormResult{IsValid: len(errs) == 0, Errors: errs}
}

// ParsePrice interpreta un precio; válido si es finito y mayor a 0
func ParsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseGuests interpreta la capacidad; válida si es entera y está en [1,20]
func ParseGuests(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < constants.MinGuests || v > constants.MaxGuests {
		return 0, false
	}
	return v, true
}

// Err devuelve nil si el formulario es válido o un error con todos los campos
func (r FormResult) Err() error {
	if r.IsValid {
		return nil
	}
	return apperrors.NewValidationError("Revisa los campos marcados", r.Errors)
}
