package services

import (
	"fmt"
	"strings"
	"time"

	"guaranihost/builders"
	"guaranihost/constants"
	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/models"
	"guaranihost/utils"
	"guaranihost/validator"
)

// BookingProcess es una reserva nueva de un tipo de recurso concreto
type BookingProcess interface {
	ValidateBooking(now time.Time) error
	Payload() dto.BookingPayload
	ResourceID() string
	Describe() string
}

// PropertyBooking reserva de una propiedad con entrada y salida
type PropertyBooking struct {
	property models.Property
	req      dto.PropertyBookingRequest
}

func NewPropertyBooking(p models.Property, req dto.PropertyBookingRequest) *PropertyBooking {
	return &PropertyBooking{property: p, req: req}
}

func (b *PropertyBooking) ValidateBooking(now time.Time) error {
	if _, _, err := validator.ParseStay(b.req.CheckIn, b.req.CheckOut, now); err != nil {
		return err
	}
	return checkBooking(validator.BookingCheck{
		DateSelected: true,
		Guests:       b.req.Guests,
		Status:       string(b.property.Status),
		Capacity:     b.property.Guests,
	})
}

func (b *PropertyBooking) Payload() dto.BookingPayload {
	return builders.NewBookingBuilder().
		ForProperty(b.property).
		WithDates(b.req.CheckIn, b.req.CheckOut).
		WithGuests(b.req.Guests).
		WithPayment(b.req.PaymentDetails, nil).
		Build()
}

func (b *PropertyBooking) ResourceID() string { return b.property.ID }
func (b *PropertyBooking) Describe() string   { return b.property.Title }

// TourBooking reserva de un tour para una fecha
type TourBooking struct {
	tour models.Tour
	req  dto.TourQuoteRequest
}

func NewTourBooking(t models.Tour, req dto.TourQuoteRequest) *TourBooking {
	return &TourBooking{tour: t, req: req}
}

func (b *TourBooking) ValidateBooking(now time.Time) error {
	if err := ValidateTourDate(b.req.Date); err != nil {
		return err
	}
	return checkBooking(b.check())
}

// ValidateTourDate solo rechaza fechas mal escritas; la fecha vacía la
// resuelve checkBooking
func ValidateTourDate(date string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil
	}
	if _, err := validator.ParseDate(date); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDate, fmt.Sprintf("Fecha inválida: %s", date), err)
	}
	return nil
}

func (b *TourBooking) check() validator.BookingCheck {
	return validator.BookingCheck{
		DateSelected: strings.TrimSpace(b.req.Date) != "",
		Guests:       b.req.Guests,
		Status:       string(b.tour.Status),
		Capacity:     b.tour.MaxCapacity,
	}
}

// Payload la salida es la fecha más la duración del tour (al menos un día)
func (b *TourBooking) Payload() dto.BookingPayload {
	checkOut := b.req.Date
	if d, err := validator.ParseDate(b.req.Date); err == nil {
		days := b.tour.Duration
		if days < 1 {
			days = 1
		}
		checkOut = d.AddDate(0, 0, days).Format(constants.DateLayout)
	}
	return builders.NewBookingBuilder().
		ForTour(b.tour).
		WithDates(b.req.Date, checkOut).
		WithGuests(b.req.Guests).
		WithPayment(b.req.PaymentDetails, nil).
		Build()
}

func (b *TourBooking) ResourceID() string { return b.tour.ID }
func (b *TourBooking) Describe() string   { return b.tour.Title }

// Quote cotiza la reserva sin enviarla
func (b *TourBooking) Quote() dto.TourQuoteView {
	total := validator.ComputeTotalPrice(b.tour.Price, b.req.Guests)
	view := dto.TourQuoteView{
		Valid:      validator.IsValidBooking(b.check()),
		TotalPrice: total,
	}
	if b.req.Guests > 0 {
		view.TotalLabel = utils.FormatPrice(total)
	}
	if err := checkBooking(b.check()); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			view.Message = appErr.Message
		}
	}
	return view
}

// checkBooking explica por qué IsValidBooking rechaza una reserva
func checkBooking(in validator.BookingCheck) error {
	if validator.IsValidBooking(in) {
		return nil
	}
	switch {
	case !strings.EqualFold(strings.TrimSpace(in.Status), constants.PropertyStatusAvailable):
		return apperrors.NewAppError(apperrors.ErrCodeNotAvailable, "No está disponible para reservar", apperrors.ErrResourceNotAvailable)
	case !in.DateSelected:
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Selecciona una fecha", nil)
	case in.Guests <= 0:
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Debe haber al menos un huésped", nil)
	default:
		return errCapacity(in.Capacity)
	}
}

func errCapacity(capacity int) error {
	return apperrors.NewAppError(apperrors.ErrCodeCapacity, fmt.Sprintf("La capacidad máxima es de %d huéspedes", capacity), nil)
}
