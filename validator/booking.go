package validator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"guaranihost/constants"
	apperrors "guaranihost/errors"
)

// BookingCheck son los datos mínimos para decidir si se puede reservar
type BookingCheck struct {
	DateSelected bool
	Guests       int
	Status       string // estado del recurso
	Capacity     int    // <= 0 significa sin capacidad declarada
}

// IsValidBooking indica si la reserva puede enviarse
func IsValidBooking(in BookingCheck) bool {
	if !in.DateSelected || in.Guests <= 0 {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(in.Status), constants.PropertyStatusAvailable) {
		return false
	}
	return in.Capacity <= 0 || in.Guests <= in.Capacity
}

// ComputeTotalPrice precio total de un tour: precio unitario por persona
func ComputeTotalPrice(unitPrice float64, guests int) float64 {
	return unitPrice * float64(guests)
}

// ComputeStayPrice precio total de una estadía: precio por noche por noches
func ComputeStayPrice(pricePerNight float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return pricePerNight * float64(nights)
}

// ParseDate interpreta una fecha yyyy-mm-dd en hora local. Acepta también
// marcas de tiempo ISO, de las que solo usa la fecha.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(constants.DateLayout) && s[len(constants.DateLayout)] == 'T' {
		s = s[:len(constants.DateLayout)]
	}
	return time.ParseInLocation(constants.DateLayout, s, time.Local)
}

// Nights cantidad de noches entre dos fechas; 0 si el rango no es válido
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
}

// ValidateBookingEdit valida la edición de una reserva existente
func ValidateBookingEdit(checkIn, checkOut string, guests int) error {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField,
			"Las fechas de entrada y salida son obligatorias", nil)
	}
	in, err := ParseDate(checkIn)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			fmt.Sprintf("Fecha de entrada inválida: %s", checkIn), err)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			fmt.Sprintf("Fecha de salida inválida: %s", checkOut), err)
	}
	if !in.Before(out) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			"La fecha de salida debe ser posterior a la fecha de entrada", nil)
	}
	if guests < constants.MinGuests {
		return apperrors.NewAppError(apperrors.ErrCodeValidation,
			"Debe haber al menos un huésped", nil)
	}
	return nil
}

// ValidateDateRange valida las fechas de una reserva nueva. La entrada no
// puede ser anterior a hoy y la salida debe ser posterior a la entrada.
func ValidateDateRange(checkIn, checkOut, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if checkIn.Before(today) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			"La fecha de entrada no puede ser anterior a hoy", nil)
	}
	if !checkOut.After(checkIn) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			"La fecha de salida debe ser posterior a la fecha de entrada", nil)
	}
	return nil
}

// ParseStay interpreta y valida las fechas de una reserva nueva
func ParseStay(checkIn, checkOut string, now time.Time) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			fmt.Sprintf("Fecha de entrada inválida: %s", checkIn), err)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidDate,
			fmt.Sprintf("Fecha de salida inválida: %s", checkOut), err)
	}
	if err := ValidateDateRange(in, out, now); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
