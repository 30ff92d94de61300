package models

import "time"

// Booking es una reserva de una propiedad o de un tour.
// Solo uno de Property o TourPackage está definido.
type Booking struct {
	ID             string        `json:"id"`
	User           *Ref          `json:"user,omitempty"`
	Property       *Ref          `json:"property,omitempty"`
	TourPackage    *Ref          `json:"tourPackage,omitempty"`
	CheckIn        string        `json:"checkIn"`
	CheckOut       string        `json:"checkOut"`
	Guests         int           `json:"guests"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	PaymentDetails string        `json:"paymentDetails"`
	PaymentImages  []string      `json:"paymentImages"`
	TotalPrice     float64       `json:"totalPrice"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ResourceKind indica qué tipo de recurso se reserva
type ResourceKind string

const (
	ResourceProperty ResourceKind = "property"
	ResourceTour     ResourceKind = "tour"
)

// Kind devuelve el tipo de recurso reservado
func (b Booking) Kind() ResourceKind {
	if b.TourPackage.IsSet() {
		return ResourceTour
	}
	return ResourceProperty
}

// Resource devuelve la referencia al recurso reservado
func (b Booking) Resource() *Ref {
	if b.TourPackage.IsSet() {
		return b.TourPackage
	}
	return b.Property
}

// ResourceTitle devuelve el nombre del recurso para mostrar en listas
func (b Booking) ResourceTitle() string {
	return b.Resource().DisplayName()
}
