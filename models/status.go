package models

import "guaranihost/constants"

// BadgeStyle es la etiqueta de estilo que usa la vista para pintar un estado
type BadgeStyle string

const (
	BadgeGreen  BadgeStyle = "green"
	BadgeYellow BadgeStyle = "yellow"
	BadgeBlue   BadgeStyle = "blue"
	BadgeRed    BadgeStyle = "red"
	BadgeGray   BadgeStyle = "gray"
)

// PropertyStatus estado de una propiedad
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = constants.PropertyStatusAvailable
	PropertyBooked    PropertyStatus = constants.PropertyStatusBooked
	PropertyConfirmed PropertyStatus = constants.PropertyStatusConfirmed
	PropertyCancelled PropertyStatus = constants.PropertyStatusCancelled
	PropertyInactive  PropertyStatus = constants.PropertyStatusInactive
)

func (s PropertyStatus) Label() string {
	switch s {
	case PropertyAvailable:
		return "Disponible"
	case PropertyBooked:
		return "Reservada"
	case PropertyConfirmed:
		return "Confirmada"
	case PropertyCancelled:
		return "Cancelada"
	case PropertyInactive:
		return "Inactiva"
	default:
		return string(s)
	}
}

func (s PropertyStatus) BadgeStyle() BadgeStyle {
	switch s {
	case PropertyAvailable:
		return BadgeGreen
	case PropertyBooked:
		return BadgeYellow
	case PropertyConfirmed:
		return BadgeBlue
	case PropertyCancelled:
		return BadgeRed
	case PropertyInactive:
		return BadgeGray
	default:
		return BadgeGray
	}
}

// TourStatus estado de un tour
type TourStatus string

const (
	TourAvailable TourStatus = constants.TourStatusAvailable
	TourSoldOut   TourStatus = constants.TourStatusSoldOut
	TourUpcoming  TourStatus = constants.TourStatusUpcoming
	TourCancelled TourStatus = constants.TourStatusCancelled
)

func (s TourStatus) Label() string {
	switch s {
	case TourAvailable:
		return "Disponible"
	case TourSoldOut:
		return "Agotado"
	case TourUpcoming:
		return "Próximamente"
	case TourCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

func (s TourStatus) BadgeStyle() BadgeStyle {
	switch s {
	case TourAvailable:
		return BadgeGreen
	case TourSoldOut:
		return BadgeRed
	case TourUpcoming:
		return BadgeBlue
	case TourCancelled:
		return BadgeGray
	default:
		return BadgeGray
	}
}

// BookingStatus estado de una reserva
type BookingStatus string

const (
	BookingPending   BookingStatus = constants.BookingStatusPending
	BookingConfirmed BookingStatus = constants.BookingStatusConfirmed
	BookingCancelled BookingStatus = constants.BookingStatusCancelled
	BookingCompleted BookingStatus = constants.BookingStatusCompleted
)

func (s BookingStatus) Label() string {
	switch s {
	case BookingPending:
		return "Pendiente"
	case BookingConfirmed:
		return "Confirmada"
	case BookingCancelled:
		return "Cancelada"
	case BookingCompleted:
		return "Completada"
	default:
		return string(s)
	}
}

func (s BookingStatus) BadgeStyle() BadgeStyle {
	switch s {
	case BookingPending:
		return BadgeYellow
	case BookingConfirmed:
		return BadgeGreen
	case BookingCancelled:
		return BadgeRed
	case BookingCompleted:
		return BadgeBlue
	default:
		return BadgeGray
	}
}

// PaymentStatus estado del pago de una reserva
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = constants.PaymentStatusPending
	PaymentPaid     PaymentStatus = constants.PaymentStatusPaid
	PaymentFailed   PaymentStatus = constants.PaymentStatusFailed
	PaymentRefunded PaymentStatus = constants.PaymentStatusRefunded
)

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pago pendiente"
	case PaymentPaid:
		return "Pagado"
	case PaymentFailed:
		return "Pago fallido"
	case PaymentRefunded:
		return "Reembolsado"
	default:
		return string(s)
	}
}

func (s PaymentStatus) BadgeStyle() BadgeStyle {
	switch s {
	case PaymentPending:
		return BadgeYellow
	case PaymentPaid:
		return BadgeGreen
	case PaymentFailed:
		return BadgeRed
	case PaymentRefunded:
		return BadgeBlue
	default:
		return BadgeGray
	}
}
