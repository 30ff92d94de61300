package services

import (
	"context"
	"sync"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/models"
	"guaranihost/services/notification"
)

// fakeAPI colaboradores en memoria
type fakeAPI struct {
	mu         sync.Mutex
	properties []models.Property
	featured   []models.Property
	tours      []models.Tour
	bookings   []models.Booking
	calls      map[string]int
	created    []dto.PropertyPayload
	bookingsIn []dto.BookingPayload
	updates    []dto.BookingUpdateRequest
	err        error
	lastToken  string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}}
}

func (f *fakeAPI) hit(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	f.lastToken = TokenFrom(ctx)
	return f.err
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) ListProperties(ctx context.Context, _ map[string]string) ([]models.Property, error) {
	if err := f.hit(ctx, "ListProperties"); err != nil {
		return nil, err
	}
	return f.properties, nil
}

func (f *fakeAPI) ListFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	if err := f.hit(ctx, "ListFeaturedProperties"); err != nil {
		return nil, err
	}
	return f.featured, nil
}

func (f *fakeAPI) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	if err := f.hit(ctx, "GetProperty"); err != nil {
		return nil, err
	}
	for _, p := range f.properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.NewUpstreamError(404, "Not Found", nil)
}

func (f *fakeAPI) CreateProperty(ctx context.Context, payload dto.PropertyPayload) (*models.Property, error) {
	if err := f.hit(ctx, "CreateProperty"); err != nil {
		return nil, err
	}
	f.created = append(f.created, payload)
	return &models.Property{ID: "new", Title: payload.Title, ImageURLs: payload.ImageURLs}, nil
}

func (f *fakeAPI) UpdateProperty(ctx context.Context, id string, payload dto.PropertyPayload) (*models.Property, error) {
	if err := f.hit(ctx, "UpdateProperty"); err != nil {
		return nil, err
	}
	f.created = append(f.created, payload)
	return &models.Property{ID: id, Title: payload.Title, ImageURLs: payload.ImageURLs}, nil
}

func (f *fakeAPI) DeleteProperty(ctx context.Context, _ string) error {
	return f.hit(ctx, "DeleteProperty")
}

func (f *fakeAPI) ListFeaturedTours(ctx context.Context) ([]models.Tour, error) {
	if err := f.hit(ctx, "ListFeaturedTours"); err != nil {
		return nil, err
	}
	return f.tours, nil
}

func (f *fakeAPI) ListTours(ctx context.Context, _ map[string]string) (*dto.TourList, error) {
	if err := f.hit(ctx, "ListTours"); err != nil {
		return nil, err
	}
	return &dto.TourList{Tours: f.tours}, nil
}

func (f *fakeAPI) GetTourByID(ctx context.Context, id string) (*models.Tour, error) {
	if err := f.hit(ctx, "GetTourByID"); err != nil {
		return nil, err
	}
	for _, t := range f.tours {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) ListUserBookings(ctx context.Context) ([]models.Booking, error) {
	if err := f.hit(ctx, "ListUserBookings"); err != nil {
		return nil, err
	}
	return f.bookings, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, payload dto.BookingPayload) (*models.Booking, error) {
	if err := f.hit(ctx, "CreateBooking"); err != nil {
		return nil, err
	}
	f.bookingsIn = append(f.bookingsIn, payload)
	return &models.Booking{ID: "b-new", TotalPrice: payload.TotalPrice, Status: models.BookingPending}, nil
}

func (f *fakeAPI) UpdateUserBooking(ctx context.Context, id string, payload dto.BookingUpdateRequest) (*models.Booking, error) {
	if err := f.hit(ctx, "UpdateUserBooking"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.updates = append(f.updates, payload)
	f.mu.Unlock()
	return &models.Booking{ID: id, CheckIn: payload.CheckIn, CheckOut: payload.CheckOut, Guests: payload.Guests}, nil
}

func (f *fakeAPI) CancelUserBooking(ctx context.Context, _ string) error {
	return f.hit(ctx, "CancelUserBooking")
}

func (f *fakeAPI) Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error) {
	if err := f.hit(ctx, "Login"); err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: "tok", User: models.User{ID: "u1", Email: in.Email}}, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	return f.hit(ctx, "Logout")
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	if err := f.hit(ctx, "CurrentUser"); err != nil {
		return nil, err
	}
	return &models.User{ID: "u1"}, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent map[string][]notification.Message
}

func (n *recordingNotifier) Notify(sessionID string, msg notification.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sent == nil {
		n.sent = map[string][]notification.Message{}
	}
	n.sent[sessionID] = append(n.sent[sessionID], msg)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(_ context.Context, e Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fakeUploader struct {
	files [][]models.StagedFile
	err   error
}

func (u *fakeUploader) Upload(_ context.Context, files []models.StagedFile) ([]string, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.files = append(u.files, files)
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = "https://cdn/" + f.Name
	}
	return urls, nil
}

var testSession = models.Session{ID: "s1", Token: "tok", UserID: "u1"}
