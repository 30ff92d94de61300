package dto

import (
	"guaranihost/models"
	"guaranihost/utils"
)

// BookingListQuery filtros de "mis reservas"
type BookingListQuery struct {
	Status string `json:"status" form:"status"`
	Kind   string `json:"kind" form:"kind" validate:"omitempty,oneof=property tour"`
	Search string `json:"search" form:"search"`
	Sort   string `json:"sort" form:"sort" validate:"omitempty,oneof=price_asc price_desc newest"`
}

// BookingPayload es lo que se envía para crear una reserva.
// Solo uno de Property o TourPackage va definido.
type BookingPayload struct {
	Property       string   `json:"property,omitempty"`
	TourPackage    string   `json:"tourPackage,omitempty"`
	CheckIn        string   `json:"checkIn"`
	CheckOut       string   `json:"checkOut"`
	Guests         int      `json:"guests"`
	TotalPrice     float64  `json:"totalPrice"`
	PaymentDetails string   `json:"paymentDetails,omitempty"`
	PaymentImages  []string `json:"paymentImages,omitempty"`
}

// BookingUpdateRequest edición de fechas, huéspedes y datos de pago.
// TotalPrice lo recalcula el servidor con el precio vigente del recurso.
type BookingUpdateRequest struct {
	CheckIn        string   `json:"checkIn"`
	CheckOut       string   `json:"checkOut"`
	Guests         int      `json:"guests"`
	TotalPrice     float64  `json:"totalPrice,omitempty"`
	PaymentDetails string   `json:"paymentDetails"`
	PaymentImages  []string `json:"paymentImages"`
}

// BookingView es una reserva lista para mostrar
type BookingView struct {
	models.Booking
	Kind         models.ResourceKind `json:"kind"`
	Title        string              `json:"title"`
	StatusLabel  string              `json:"statusLabel"`
	StatusBadge  models.BadgeStyle   `json:"statusBadge"`
	PaymentLabel string              `json:"paymentLabel"`
	PaymentBadge models.BadgeStyle   `json:"paymentBadge"`
	TotalLabel   string              `json:"totalLabel"`
	CanEdit      bool                `json:"canEdit"`
	CanCancel    bool                `json:"canCancel"`
}

// NewBookingView arma la vista de una reserva
func NewBookingView(b models.Booking) BookingView {
	state := models.BookingStateFor(b.Status)
	return BookingView{
		Booking:      b,
		Kind:         b.Kind(),
		Title:        b.ResourceTitle(),
		StatusLabel:  b.Status.Label(),
		StatusBadge:  b.Status.BadgeStyle(),
		PaymentLabel: b.PaymentStatus.Label(),
		PaymentBadge: b.PaymentStatus.BadgeStyle(),
		TotalLabel:   utils.FormatPrice(b.TotalPrice),
		CanEdit:      state.Edit() == nil,
		CanCancel:    state.Cancel() == nil,
	}
}

// NewBookingViews arma las vistas de una lista de reservas
func NewBookingViews(bookings []models.Booking) []BookingView {
	out := make([]BookingView, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingView(b)
	}
	return out
}
