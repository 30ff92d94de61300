package models

import "time"

// Property es una propiedad de alquiler publicada por un anfitrión
type Property struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	PricePerNight float64        `json:"pricePerNight"`
	Guests        int            `json:"guests"` // capacidad máxima (1-20)
	Status        PropertyStatus `json:"status"`
	Amenities     []string       `json:"amenities"`
	ImageURLs     []string       `json:"imageUrls"`
	AverageRating *float64       `json:"averageRating,omitempty"`
	Host          *Ref           `json:"host,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// PrimaryImage devuelve la imagen de portada (índice 0)
func (p Property) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// Rating devuelve la calificación promedio o 0 si no tiene
func (p Property) Rating() float64 {
	if p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}
