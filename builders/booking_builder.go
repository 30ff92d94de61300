package builders

import (
	"guaranihost/dto"
	"guaranihost/models"
	"guaranihost/validator"
)

// BookingBuilder arma el payload de una reserva paso a paso
type BookingBuilder struct {
	payload   *dto.BookingPayload
	unitPrice float64
	perNight  bool
}

// NewBookingBuilder crea un BookingBuilder vacío
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		payload: &dto.BookingPayload{},
	}
}

// ForProperty reserva de una propiedad; el total se calcula por noche
func (b *BookingBuilder) ForProperty(p models.Property) *BookingBuilder {
	b.payload.Property = p.ID
	b.payload.TourPackage = ""
	b.unitPrice = p.PricePerNight
	b.perNight = true
	return b
}

// ForTour reserva de un tour; el total se calcula por persona
func (b *BookingBuilder) ForTour(t models.Tour) *BookingBuilder {
	b.payload.TourPackage = t.ID
	b.payload.Property = ""
	b.unitPrice = t.Price
	b.perNight = false
	return b
}

// WithDates fechas de entrada y salida (yyyy-mm-dd)
func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.payload.CheckIn = checkIn
	b.payload.CheckOut = checkOut
	return b
}

// WithGuests cantidad de huéspedes
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.payload.Guests = guests
	return b
}

// WithPayment datos del pago y comprobantes
func (b *BookingBuilder) WithPayment(details string, images []string) *BookingBuilder {
	b.payload.PaymentDetails = details
	b.payload.PaymentImages = images
	return b
}

// Build devuelve el payload con el total calculado
func (b *BookingBuilder) Build() dto.BookingPayload {
	out := *b.payload
	if b.perNight {
		in, errIn := validator.ParseDate(out.CheckIn)
		co, errOut := validator.ParseDate(out.CheckOut)
		if errIn == nil && errOut == nil {
			out.TotalPrice = validator.ComputeStayPrice(b.unitPrice, validator.Nights(in, co))
		}
	} else {
		out.TotalPrice = validator.ComputeTotalPrice(b.unitPrice, out.Guests)
	}
	return out
}
