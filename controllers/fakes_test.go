package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAPI struct {
	mu         sync.Mutex
	properties []models.Property
	featured   []models.Property
	tours      []models.Tour
	bookings   []models.Booking
	tourErr    error
	calls      map[string]int
}

func newStubAPI() *stubAPI {
	return &stubAPI{calls: map[string]int{}}
}

func (s *stubAPI) hit(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
}

func (s *stubAPI) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubAPI) ListProperties(context.Context, map[string]string) ([]models.Property, error) {
	s.hit("ListProperties")
	return s.properties, nil
}

func (s *stubAPI) ListFeaturedProperties(context.Context) ([]models.Property, error) {
	s.hit("ListFeaturedProperties")
	return s.featured, nil
}

func (s *stubAPI) GetProperty(_ context.Context, id string) (*models.Property, error) {
	s.hit("GetProperty")
	for _, p := range s.properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.NewUpstreamError(http.StatusNotFound, "Propiedad no encontrada", nil)
}

func (s *stubAPI) CreateProperty(_ context.Context, payload dto.PropertyPayload) (*models.Property, error) {
	s.hit("CreateProperty")
	return &models.Property{ID: "new", Title: payload.Title}, nil
}

func (s *stubAPI) UpdateProperty(_ context.Context, id string, payload dto.PropertyPayload) (*models.Property, error) {
	s.hit("UpdateProperty")
	return &models.Property{ID: id, Title: payload.Title}, nil
}

func (s *stubAPI) DeleteProperty(context.Context, string) error {
	s.hit("DeleteProperty")
	return nil
}

func (s *stubAPI) ListFeaturedTours(context.Context) ([]models.Tour, error) {
	s.hit("ListFeaturedTours")
	if s.tourErr != nil {
		return nil, s.tourErr
	}
	return s.tours, nil
}

func (s *stubAPI) ListTours(context.Context, map[string]string) (*dto.TourList, error) {
	s.hit("ListTours")
	if s.tourErr != nil {
		return nil, s.tourErr
	}
	return &dto.TourList{Tours: s.tours}, nil
}

func (s *stubAPI) GetTourByID(_ context.Context, id string) (*models.Tour, error) {
	s.hit("GetTourByID")
	for _, t := range s.tours {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (s *stubAPI) ListUserBookings(context.Context) ([]models.Booking, error) {
	s.hit("ListUserBookings")
	return s.bookings, nil
}

func (s *stubAPI) CreateBooking(_ context.Context, payload dto.BookingPayload) (*models.Booking, error) {
	s.hit("CreateBooking")
	return &models.Booking{ID: "b-new", TotalPrice: payload.TotalPrice, Status: models.BookingPending}, nil
}

func (s *stubAPI) UpdateUserBooking(_ context.Context, id string, _ dto.BookingUpdateRequest) (*models.Booking, error) {
	s.hit("UpdateUserBooking")
	return &models.Booking{ID: id}, nil
}

func (s *stubAPI) CancelUserBooking(context.Context, string) error {
	s.hit("CancelUserBooking")
	return nil
}

func (s *stubAPI) Login(_ context.Context, in dto.LoginInput) (*dto.AuthResponse, error) {
	s.hit("Login")
	return &dto.AuthResponse{Token: "tok", User: models.User{ID: "u1", Email: in.Email, Role: "host"}}, nil
}

func (s *stubAPI) Logout(context.Context) error {
	s.hit("Logout")
	return nil
}

func (s *stubAPI) CurrentUser(context.Context) (*models.User, error) {
	s.hit("CurrentUser")
	return &models.User{ID: "u1", FirstName: "Ana", LastName: "Benítez", Role: "host"}, nil
}

// memFilters guarda los filtros en memoria
type memFilters struct {
	saved map[string]dto.ListFilters
}

func (m *memFilters) SaveLastFilters(_ context.Context, sessionID, screen string, f dto.ListFilters) error {
	if m.saved == nil {
		m.saved = map[string]dto.ListFilters{}
	}
	m.saved[screen+sessionID] = f
	return nil
}

func (m *memFilters) GetLastFilters(_ context.Context, sessionID, screen string) (*dto.ListFilters, error) {
	f, ok := m.saved[screen+sessionID]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *memFilters) ClearLastFilters(_ context.Context, sessionID, screen string) error {
	delete(m.saved, screen+sessionID)
	return nil
}

type memFavorites struct {
	ids map[models.ResourceKind]map[string]bool
}

func (m *memFavorites) List(_ context.Context, _ models.Session, kind models.ResourceKind) ([]string, error) {
	out := []string{}
	for id := range m.ids[kind] {
		out = append(out, id)
	}
	return out, nil
}

func (m *memFavorites) Toggle(_ context.Context, _ models.Session, kind models.ResourceKind, id string) (bool, error) {
	if m.ids == nil {
		m.ids = map[models.ResourceKind]map[string]bool{}
	}
	if m.ids[kind] == nil {
		m.ids[kind] = map[string]bool{}
	}
	if m.ids[kind][id] {
		delete(m.ids[kind], id)
		return false, nil
	}
	m.ids[kind][id] = true
	return true, nil
}

type cdnUploader struct{}

func (cdnUploader) Upload(_ context.Context, files []models.StagedFile) ([]string, error) {
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = "https://cdn/" + f.Name
	}
	return urls, nil
}

// testEngine arma un router con los mismos middlewares que la aplicación
func testEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.SessionMiddleware(), middleware.OptionalAuth())
	return r
}

func hostToken(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": "host"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type reqOpts struct {
	token       string
	session     string
	body        string
	contentType string
}

func do(r *gin.Engine, method, path string, opts reqOpts) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(opts.body))
	if opts.body != "" {
		ct := opts.contentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}
	if opts.session != "" {
		req.Header.Set(middleware.SessionHeader, opts.session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code       int                  `json:"code"`
	Mess       string               `json:"mess"`
	Data       json.RawMessage      `json:"data"`
	Errors     map[string]string    `json:"errors"`
	Pagination *response.Pagination `json:"pagination"`
}

// decode lee el sobre de respuesta y deja data en out
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data %s: %v", env.Data, err)
		}
	}
	return env
}

func newFacade(api *stubAPI) *services.BookingFacade {
	return services.NewBookingFacade(services.BookingFacadeOptions{Bookings: api, Resources: api})
}
