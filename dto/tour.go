package dto

import (
	"guaranihost/models"
	"guaranihost/utils"
)

// TourListQuery filtros de la búsqueda de tours
type TourListQuery struct {
	ListFilters
	Reset bool `json:"-" form:"reset"`
}

// TourList es la respuesta del servicio de tours
type TourList struct {
	Tours []models.Tour `json:"tours"`
}

// TourView es un tour listo para mostrar
type TourView struct {
	models.Tour
	PriceLabel   string            `json:"priceLabel"`
	StatusLabel  string            `json:"statusLabel"`
	StatusBadge  models.BadgeStyle `json:"statusBadge"`
	PrimaryImage string            `json:"primaryImage"`
	HostName     string            `json:"hostName"`
	Favorite     bool              `json:"favorite"`
}

// NewTourView arma la vista de un tour
func NewTourView(t models.Tour) TourView {
	return TourView{
		Tour:         t,
		PriceLabel:   utils.FormatPrice(t.Price),
		StatusLabel:  t.Status.Label(),
		StatusBadge:  t.Status.BadgeStyle(),
		PrimaryImage: t.PrimaryImage(),
		HostName:     t.Host.FullName(),
	}
}

// NewTourViews arma las vistas de una lista de tours
func NewTourViews(tours []models.Tour) []TourView {
	out := make([]TourView, len(tours))
	for i, t := range tours {
		out[i] = NewTourView(t)
	}
	return out
}

// TourListView es la pantalla de búsqueda de tours
type TourListView struct {
	Tours      []TourView  `json:"tours"`
	Filters    ListFilters `json:"filters"`
	Locations  []string    `json:"locations"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// TourQuoteRequest datos del formulario de reserva de un tour
type TourQuoteRequest struct {
	Date           string `json:"date"`
	Guests         int    `json:"guests"`
	PaymentDetails string `json:"paymentDetails"`
}

// TourQuoteView resultado de cotizar una reserva de tour
type TourQuoteView struct {
	Valid      bool    `json:"valid"`
	TotalPrice float64 `json:"totalPrice"`
	TotalLabel string  `json:"totalLabel"`
	Message    string  `json:"message,omitempty"`
}

// TourDetailView es la pantalla de detalle de un tour
type TourDetailView struct {
	Tour     TourView `json:"tour"`
	Bookable bool     `json:"bookable"`
}
