package services

import (
	"context"
	"time"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/models"
	"guaranihost/services/logger"
	"guaranihost/services/notification"
	"guaranihost/validator"
)

// BookingFacade valida localmente, llama al colaborador de reservas y
// avisa al usuario. Si la validación falla no se hace ninguna llamada.
type BookingFacade struct {
	bookings  BookingAPI
	resources ResourceLookup
	notifier  notification.Service
	events    EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

// ResourceLookup carga el recurso de una reserva para controlar la
// capacidad y recalcular el total al editarla
type ResourceLookup interface {
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	GetTourByID(ctx context.Context, id string) (*models.Tour, error)
}

type BookingFacadeOptions struct {
	Bookings  BookingAPI
	Resources ResourceLookup
	Notifier  notification.Service
	Events    EventPublisher
	Logger    logger.Logger
	Now       func() time.Time
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	f := &BookingFacade{
		bookings:  opts.Bookings,
		resources: opts.Resources,
		notifier:  opts.Notifier,
		events:    opts.Events,
		logger:    opts.Logger,
		now:       opts.Now,
	}
	if f.resources == nil {
		if lookup, ok := opts.Bookings.(ResourceLookup); ok {
			f.resources = lookup
		}
	}
	if f.notifier == nil {
		f.notifier = notification.Nop{}
	}
	if f.events == nil {
		f.events = NoopPublisher{}
	}
	if f.logger == nil {
		f.logger = logger.Nop{}
	}
	if f.now == nil {
		f.now = time.Now
	}
	return f
}

// ListBookings reservas del usuario de la sesión
func (f *BookingFacade) ListBookings(ctx context.Context, session models.Session) ([]models.Booking, error) {
	if !session.Authenticated() {
		return nil, errNoSession()
	}
	bookings, err := f.bookings.ListUserBookings(WithToken(ctx, session.Token))
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// CreateBooking valida y envía una reserva nueva
func (f *BookingFacade) CreateBooking(ctx context.Context, session models.Session, process BookingProcess) (*models.Booking, error) {
	if !session.Authenticated() {
		return nil, errNoSession()
	}
	if err := process.ValidateBooking(f.now()); err != nil {
		return nil, err
	}

	booking, err := f.bookings.CreateBooking(WithToken(ctx, session.Token), process.Payload())
	if err != nil {
		f.logger.Error("crear reserva de %s: %v", process.ResourceID(), err)
		return nil, err
	}

	f.notify(session, notification.NewMessageBuilder(notification.LevelSuccess).
		Title("Reserva creada").
		Text("Tu reserva de %s quedó registrada", process.Describe()).
		Build())
	f.publish(ctx, "booking.created", booking.ID, session)
	return booking, nil
}

// CheckStay valida las fechas de una estadía antes de cargar la propiedad
func (f *BookingFacade) CheckStay(checkIn, checkOut string) error {
	_, _, err := validator.ParseStay(checkIn, checkOut, f.now())
	return err
}

// UpdateBooking edita fechas, huéspedes o datos de pago de una reserva
// pendiente o confirmada
func (f *BookingFacade) UpdateBooking(ctx context.Context, session models.Session, id string, req dto.BookingUpdateRequest) (*models.Booking, error) {
	if !session.Authenticated() {
		return nil, errNoSession()
	}
	if err := validator.ValidateBookingEdit(req.CheckIn, req.CheckOut, req.Guests); err != nil {
		return nil, err
	}
	ctx = WithToken(ctx, session.Token)

	current, err := f.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := models.BookingStateFor(current.Status).Edit(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation,
			"Solo se pueden modificar reservas pendientes o confirmadas", apperrors.ErrBookingNotEditable)
	}
	total, err := f.reprice(ctx, current, req)
	if err != nil {
		return nil, err
	}
	req.TotalPrice = total

	updated, err := f.bookings.UpdateUserBooking(ctx, id, req)
	if err != nil {
		f.logger.Error("actualizar reserva %s: %v", id, err)
		return nil, err
	}
	f.notify(session, notification.NewMessageBuilder(notification.LevelSuccess).
		Title("Reserva actualizada").
		Text("Los cambios en tu reserva de %s se guardaron", current.ResourceTitle()).
		Build())
	f.publish(ctx, "booking.updated", id, session)
	return updated, nil
}

// CancelBooking cancela una reserva pendiente o confirmada
func (f *BookingFacade) CancelBooking(ctx context.Context, session models.Session, id string) error {
	if !session.Authenticated() {
		return errNoSession()
	}
	ctx = WithToken(ctx, session.Token)

	current, err := f.find(ctx, id)
	if err != nil {
		return err
	}
	if err := models.BookingStateFor(current.Status).Cancel(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation,
			"Solo se pueden cancelar reservas pendientes o confirmadas", apperrors.ErrBookingNotCancellable)
	}

	if err := f.bookings.CancelUserBooking(ctx, id); err != nil {
		f.logger.Error("cancelar reserva %s: %v", id, err)
		return err
	}
	f.notify(session, notification.NewMessageBuilder(notification.LevelInfo).
		Title("Reserva cancelada").
		Text("Cancelaste tu reserva de %s", current.ResourceTitle()).
		Build())
	f.publish(ctx, "booking.cancelled", id, session)
	return nil
}

// reprice controla la capacidad del recurso y devuelve el total nuevo:
// noches por precio en propiedades, precio por huésped en tours.
// Sin recurso conocido devuelve 0 y el colaborador conserva el total.
func (f *BookingFacade) reprice(ctx context.Context, current *models.Booking, req dto.BookingUpdateRequest) (float64, error) {
	ref := current.Resource()
	if f.resources == nil || ref == nil || ref.ID == "" {
		return 0, nil
	}

	if current.Kind() == models.ResourceTour {
		tour, err := f.resources.GetTourByID(ctx, ref.ID)
		if err != nil {
			return 0, err
		}
		if tour == nil {
			return 0, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Tour no encontrado", apperrors.ErrResourceNotFound)
		}
		if tour.MaxCapacity > 0 && req.Guests > tour.MaxCapacity {
			return 0, errCapacity(tour.MaxCapacity)
		}
		return validator.ComputeTotalPrice(tour.Price, req.Guests), nil
	}

	prop, err := f.resources.GetProperty(ctx, ref.ID)
	if err != nil {
		return 0, err
	}
	if prop == nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Propiedad no encontrada", apperrors.ErrResourceNotFound)
	}
	if prop.Guests > 0 && req.Guests > prop.Guests {
		return 0, errCapacity(prop.Guests)
	}
	in, _ := validator.ParseDate(req.CheckIn)
	out, _ := validator.ParseDate(req.CheckOut)
	return validator.ComputeStayPrice(prop.PricePerNight, validator.Nights(in, out)), nil
}

func (f *BookingFacade) find(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := f.bookings.ListUserBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Reserva no encontrada", apperrors.ErrResourceNotFound)
}

func (f *BookingFacade) notify(session models.Session, msg notification.Message) {
	if err := f.notifier.Notify(session.ID, msg); err != nil {
		f.logger.Warn("aviso a la sesión %s: %v", session.ID, err)
	}
}

func (f *BookingFacade) publish(ctx context.Context, eventType, id string, session models.Session) {
	err := f.events.Publish(ctx, Event{Type: eventType, ResourceID: id, UserID: session.UserID, OccurredAt: f.now()})
	if err != nil {
		f.logger.Warn("publicar %s %s: %v", eventType, id, err)
	}
}
