package models

import "errors"

// BookingState define qué acciones del usuario permite cada estado de reserva.
// Las transiciones reales las hace el backend; aquí solo se filtra.
type BookingState interface {
	Edit() error
	Cancel() error
	Terminal() bool
}

// PendingState reserva pendiente de confirmación
type PendingState struct{}

func (s *PendingState) Edit() error    { return nil }
func (s *PendingState) Cancel() error  { return nil }
func (s *PendingState) Terminal() bool { return false }

// ConfirmedState reserva confirmada
type ConfirmedState struct{}

func (s *ConfirmedState) Edit() error    { return nil }
func (s *ConfirmedState) Cancel() error  { return nil }
func (s *ConfirmedState) Terminal() bool { return false }

// CompletedState reserva completada; inmutable
type CompletedState struct{}

func (s *CompletedState) Edit() error {
	return errors.New("cannot edit completed booking")
}

func (s *CompletedState) Cancel() error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) Terminal() bool { return true }

// CancelledState reserva cancelada
type CancelledState struct{}

func (s *CancelledState) Edit() error {
	return errors.New("cannot edit cancelled booking")
}

func (s *CancelledState) Cancel() error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Terminal() bool { return true }

// unknownState bloquea cualquier acción sobre estados desconocidos
type unknownState struct{ status BookingStatus }

func (s *unknownState) Edit() error {
	return errors.New("cannot edit booking in status " + string(s.status))
}

func (s *unknownState) Cancel() error {
	return errors.New("cannot cancel booking in status " + string(s.status))
}

func (s *unknownState) Terminal() bool { return true }

// BookingStateFor devuelve el estado que corresponde al status de la reserva
func BookingStateFor(status BookingStatus) BookingState {
	switch status {
	case BookingPending:
		return &PendingState{}
	case BookingConfirmed:
		return &ConfirmedState{}
	case BookingCompleted:
		return &CompletedState{}
	case BookingCancelled:
		return &CancelledState{}
	default:
		return &unknownState{status: status}
	}
}

// CanModify indica si la reserva admite edición y cancelación
func (b Booking) CanModify() bool {
	return BookingStateFor(b.Status).Edit() == nil
}
