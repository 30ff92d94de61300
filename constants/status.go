package constants

// Estados de propiedad
const (
	PropertyStatusAvailable = "available"
	PropertyStatusBooked    = "booked"
	PropertyStatusConfirmed = "confirmed"
	PropertyStatusCancelled = "cancelled"
	PropertyStatusInactive  = "inactive"
)

// Estados de tour
const (
	TourStatusAvailable = "available"
	TourStatusSoldOut   = "sold_out"
	TourStatusUpcoming  = "upcoming"
	TourStatusCancelled = "cancelled"
)

// Estados de reserva
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Estados de pago
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Límites del formulario de propiedades e imágenes
const (
	MinDescriptionLength = 50
	MinGuests            = 1
	MaxGuests            = 20
	MaxImages            = 10
	MaxImageBytes        = 5 * 1024 * 1024
)

// DateLayout es el formato de fecha que usa el backend (yyyy-mm-dd)
const DateLayout = "2006-01-02"

// PriceFallback se muestra cuando el precio no es un número válido
const PriceFallback = "Consultar"
