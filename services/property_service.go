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

// PropertyService pantalla "mis propiedades" del anfitrión: alta,
// edición y baja con las imágenes preparadas en la sesión
type PropertyService struct {
	api      PropertyAPI
	staging  *StagingStore
	uploader ImageUploader
	notifier notification.Service
	events   EventPublisher
	logger   logger.Logger
}

type PropertyServiceOptions struct {
	API      PropertyAPI
	Staging  *StagingStore
	Uploader ImageUploader
	Notifier notification.Service
	Events   EventPublisher
	Logger   logger.Logger
}

func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	s := &PropertyService{
		api:      opts.API,
		staging:  opts.Staging,
		uploader: opts.Uploader,
		notifier: opts.Notifier,
		events:   opts.Events,
		logger:   opts.Logger,
	}
	if s.staging == nil {
		s.staging = NewStagingStore(0)
	}
	if s.notifier == nil {
		s.notifier = notification.Nop{}
	}
	if s.events == nil {
		s.events = NoopPublisher{}
	}
	if s.logger == nil {
		s.logger = logger.Nop{}
	}
	return s
}

// List propiedades del anfitrión de la sesión
func (s *PropertyService) List(ctx context.Context, session models.Session) ([]models.Property, error) {
	if !session.Authenticated() {
		return nil, errNoSession()
	}
	props, err := s.api.ListProperties(WithToken(ctx, session.Token), map[string]string{"host": session.UserID})
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []models.Property{}
	}
	return props, nil
}

// Create valida el formulario, sube las imágenes de la sesión en orden y
// crea la propiedad
func (s *PropertyService) Create(ctx context.Context, session models.Session, form dto.PropertyFormRequest) (*models.Property, error) {
	return s.submit(ctx, session, validator.ModeCreate, "", form)
}

// Update igual que Create; conserva las imágenes existentes indicadas y
// agrega las nuevas al final
func (s *PropertyService) Update(ctx context.Context, session models.Session, id string, form dto.PropertyFormRequest) (*models.Property, error) {
	return s.submit(ctx, session, validator.ModeEdit, id, form)
}

func (s *PropertyService) submit(ctx context.Context, session models.Session, mode validator.FormMode, id string, form dto.PropertyFormRequest) (*models.Property, error) {
	if !session.Authenticated() {
		return nil, errNoSession()
	}

	var files []models.StagedFile
	_ = s.staging.With(session.ID, func(buf *models.ImageBuffer) error {
		files = buf.Files()
		return nil
	})

	existing := form.ExistingImages
	if mode == validator.ModeCreate {
		existing = nil
	}
	result := validator.ValidatePropertyForm(form.PropertyForm, mode, validator.ImageCount{New: len(files), Existing: len(existing)})
	if err := result.Err(); err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.Upload(ctx, files)
	if err != nil {
		s.logger.Error("subir imágenes de la sesión %s: %v", session.ID, err)
		return nil, err
	}
	urls := make([]string, 0, len(existing)+len(uploaded))
	urls = append(urls, existing...)
	urls = append(urls, uploaded...)

	payload := dto.NewPropertyPayload(form, urls)
	ctx = WithToken(ctx, session.Token)

	var (
		saved     *models.Property
		eventType string
		title     string
	)
	if mode == validator.ModeCreate {
		saved, err = s.api.CreateProperty(ctx, payload)
		eventType, title = "property.created", "Propiedad creada"
	} else {
		saved, err = s.api.UpdateProperty(ctx, id, payload)
		eventType, title = "property.updated", "Propiedad actualizada"
	}
	if err != nil {
		s.logger.Error("%s %s: %v", eventType, id, err)
		return nil, err
	}

	s.staging.Clear(session.ID)
	s.notify(session, notification.NewMessageBuilder(notification.LevelSuccess).
		Title(title).
		Text("%s se guardó correctamente", payload.Title).
		Build())
	s.publish(ctx, eventType, saved.ID, session)
	return saved, nil
}

// Delete elimina una propiedad del anfitrión
func (s *PropertyService) Delete(ctx context.Context, session models.Session, id string) error {
	if !session.Authenticated() {
		return errNoSession()
	}
	if id == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Falta el id de la propiedad", nil)
	}
	if err := s.api.DeleteProperty(WithToken(ctx, session.Token), id); err != nil {
		s.logger.Error("eliminar propiedad %s: %v", id, err)
		return err
	}
	s.notify(session, notification.NewMessageBuilder(notification.LevelInfo).
		Title("Propiedad eliminada").
		Text("La propiedad %s fue eliminada", id).
		Build())
	s.publish(ctx, "property.deleted", id, session)
	return nil
}

func (s *PropertyService) notify(session models.Session, msg notification.Message) {
	if err := s.notifier.Notify(session.ID, msg); err != nil {
		s.logger.Warn("aviso a la sesión %s: %v", session.ID, err)
	}
}

func (s *PropertyService) publish(ctx context.Context, eventType, id string, session models.Session) {
	if err := s.events.Publish(ctx, Event{Type: eventType, ResourceID: id, UserID: session.UserID, OccurredAt: time.Now()}); err != nil {
		s.logger.Warn("publicar %s %s: %v", eventType, id, err)
	}
}
