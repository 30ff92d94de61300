package models

import "time"

// TourHost son los datos del anfitrión desnormalizados dentro del tour
type TourHost struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName devuelve nombre y apellido del anfitrión
func (h TourHost) FullName() string {
	return joinName(h.FirstName, h.LastName)
}

// Tour es un paquete turístico; esta capa solo lo lee y lo reserva
type Tour struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Price         float64    `json:"price"`
	Duration      int        `json:"duration"` // días
	MaxCapacity   int        `json:"maxCapacity"`
	Status        TourStatus `json:"status"`
	Amenities     []string   `json:"amenities"`
	ImageURLs     []string   `json:"imageUrls"`
	AverageRating *float64   `json:"averageRating,omitempty"`
	TotalReviews  int        `json:"totalReviews"`
	Host          TourHost   `json:"host"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PrimaryImage devuelve la imagen de portada (índice 0)
func (t Tour) PrimaryImage() string {
	if len(t.ImageURLs) == 0 {
		return ""
	}
	return t.ImageURLs[0]
}

// Rating devuelve la calificación promedio o 0 si no tiene
func (t Tour) Rating() float64 {
	if t.AverageRating == nil {
		return 0
	}
	return *t.AverageRating
}
