package dto

import (
	"strings"

	"guaranihost/models"
	"guaranihost/utils"
	"guaranihost/validator"
)

// PropertyListQuery filtros del listado de propiedades del anfitrión
type PropertyListQuery struct {
	ListFilters
	Page  int  `json:"page" form:"page" validate:"gte=0"`
	Limit int  `json:"limit" form:"limit" validate:"gte=0,lte=100"`
	Reset bool `json:"-" form:"reset"`
}

// PropertyFormRequest es el formulario de alta o edición. Las imágenes
// nuevas se toman del buffer de la sesión; ExistingImages son las URL ya
// publicadas que se conservan, en orden.
type PropertyFormRequest struct {
	validator.PropertyForm
	Status         string   `json:"status"`
	ExistingImages []string `json:"existingImages"`
}

// PropertyPayload es lo que se envía al servicio de propiedades
type PropertyPayload struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	PricePerNight float64  `json:"pricePerNight"`
	Guests        int      `json:"guests"`
	Status        string   `json:"status,omitempty"`
	Amenities     []string `json:"amenities"`
	ImageURLs     []string `json:"imageUrls"`
}

// NewPropertyPayload arma el payload a partir de un formulario ya validado
func NewPropertyPayload(form PropertyFormRequest, imageURLs []string) PropertyPayload {
	price, _ := validator.ParsePrice(form.PricePerNight)
	guests, _ := validator.ParseGuests(form.MaxGuests)
	amenities := form.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return PropertyPayload{
		Title:         strings.TrimSpace(form.Title),
		Description:   strings.TrimSpace(form.Description),
		Address:       strings.TrimSpace(form.Address),
		City:          strings.TrimSpace(form.City),
		PricePerNight: price,
		Guests:        guests,
		Status:        form.Status,
		Amenities:     amenities,
		ImageURLs:     imageURLs,
	}
}

// PropertyView es una propiedad lista para mostrar
type PropertyView struct {
	models.Property
	PriceLabel   string            `json:"priceLabel"`
	StatusLabel  string            `json:"statusLabel"`
	StatusBadge  models.BadgeStyle `json:"statusBadge"`
	PrimaryImage string            `json:"primaryImage"`
	Favorite     bool              `json:"favorite"`
}

// NewPropertyView arma la vista de una propiedad
func NewPropertyView(p models.Property) PropertyView {
	return PropertyView{
		Property:     p,
		PriceLabel:   utils.FormatPrice(p.PricePerNight),
		StatusLabel:  p.Status.Label(),
		StatusBadge:  p.Status.BadgeStyle(),
		PrimaryImage: p.PrimaryImage(),
	}
}

// NewPropertyViews arma las vistas de una lista de propiedades
func NewPropertyViews(props []models.Property) []PropertyView {
	out := make([]PropertyView, len(props))
	for i, p := range props {
		out[i] = NewPropertyView(p)
	}
	return out
}

// PropertyListView es la pantalla "mis propiedades"
type PropertyListView struct {
	Properties []PropertyView `json:"properties"`
	Filters    ListFilters    `json:"filters"`
	Cities     []string       `json:"cities"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// PropertyBookingRequest reserva de una propiedad con entrada y salida
type PropertyBookingRequest struct {
	CheckIn        string `json:"checkIn" validate:"required"`
	CheckOut       string `json:"checkOut" validate:"required"`
	Guests         int    `json:"guests" validate:"required,gte=1"`
	PaymentDetails string `json:"paymentDetails"`
}
