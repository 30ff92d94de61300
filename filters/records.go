package filters

import (
	"time"

	"guaranihost/models"
)

// PropertyFields lee los campos de una propiedad
var PropertyFields = Fields[models.Property]{
	Text: map[string]func(models.Property) string{
		"title":       func(p models.Property) string { return p.Title },
		"description": func(p models.Property) string { return p.Description },
		"address":     func(p models.Property) string { return p.Address },
		"city":        func(p models.Property) string { return p.City },
		"status":      func(p models.Property) string { return string(p.Status) },
	},
	Price:     func(p models.Property) float64 { return p.PricePerNight },
	CreatedAt: func(p models.Property) time.Time { return p.CreatedAt },
	Rating:    func(p models.Property) float64 { return p.Rating() },
}

// PropertySearchFields campos que recorre la búsqueda de propiedades
var PropertySearchFields = []string{"title", "description", "city"}

// TourFields lee los campos de un tour
var TourFields = Fields[models.Tour]{
	Text: map[string]func(models.Tour) string{
		"title":       func(t models.Tour) string { return t.Title },
		"description": func(t models.Tour) string { return t.Description },
		"location":    func(t models.Tour) string { return t.Location },
		"status":      func(t models.Tour) string { return string(t.Status) },
	},
	Price:     func(t models.Tour) float64 { return t.Price },
	CreatedAt: func(t models.Tour) time.Time { return t.CreatedAt },
	Rating:    func(t models.Tour) float64 { return t.Rating() },
}

// TourSearchFields campos que recorre la búsqueda de tours
var TourSearchFields = []string{"title", "description", "location"}

// BookingFields lee los campos de una reserva
var BookingFields = Fields[models.Booking]{
	Text: map[string]func(models.Booking) string{
		"resource":      func(b models.Booking) string { return b.ResourceTitle() },
		"status":        func(b models.Booking) string { return string(b.Status) },
		"paymentStatus": func(b models.Booking) string { return string(b.PaymentStatus) },
		"kind":          func(b models.Booking) string { return string(b.Kind()) },
	},
	Price:     func(b models.Booking) float64 { return b.TotalPrice },
	CreatedAt: func(b models.Booking) time.Time { return b.CreatedAt },
}

// BookingSearchFields campos que recorre la búsqueda de reservas
var BookingSearchFields = []string{"resource"}
