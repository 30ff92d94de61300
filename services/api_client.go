package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/models"
	"guaranihost/services/logger"
)

// PropertyAPI servicio colaborador de propiedades
type PropertyAPI interface {
	ListProperties(ctx context.Context, filters map[string]string) ([]models.Property, error)
	ListFeaturedProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, payload dto.PropertyPayload) (*models.Property, error)
	UpdateProperty(ctx context.Context, id string, payload dto.PropertyPayload) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// TourAPI servicio colaborador de tours
type TourAPI interface {
	ListFeaturedTours(ctx context.Context) ([]models.Tour, error)
	ListTours(ctx context.Context, query map[string]string) (*dto.TourList, error)
	GetTourByID(ctx context.Context, id string) (*models.Tour, error)
}

// BookingAPI servicio colaborador de reservas
type BookingAPI interface {
	ListUserBookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, payload dto.BookingPayload) (*models.Booking, error)
	UpdateUserBooking(ctx context.Context, id string, payload dto.BookingUpdateRequest) (*models.Booking, error)
	CancelUserBooking(ctx context.Context, id string) error
}

// AuthAPI servicio colaborador de autenticación
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// API reúne todos los colaboradores
type API interface {
	PropertyAPI
	TourAPI
	BookingAPI
	AuthAPI
}

type tokenKey struct{}

// WithToken guarda el token del usuario para reenviarlo a los colaboradores
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom devuelve el token guardado con WithToken
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// APIClient cliente REST/JSON de los servicios colaboradores. No reintenta.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// APIClientOptions opciones de NewAPIClient
type APIClientOptions struct {
	BaseURL string
	Timeout time.Duration
	Logger  logger.Logger
	Client  *http.Client
}

// NewAPIClient crea el cliente de los colaboradores
func NewAPIClient(opts APIClientOptions) *APIClient {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &APIClient{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: client,
		logger:     log,
	}
}

// envelope algunos endpoints responden {data: ...}, otros el objeto directo
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("%s %s: %v", method, path, err)
		return apperrors.NewUpstreamError(0, "No se pudo conectar con el servicio", err)
	}
	defer resp.Body.Close()
	c.logger.Debug("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUpstreamError(resp.StatusCode, "Respuesta incompleta del servicio", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		c.logger.Error("%s %s -> %d: %s", method, path, resp.StatusCode, msg)
		return apperrors.NewUpstreamError(resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decodeBody(raw, out)
}

func decodeBody(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			trimmed = env.Data
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return apperrors.NewUpstreamError(http.StatusBadGateway, "Respuesta inválida del servicio", err)
	}
	return nil
}

func toValues(m map[string]string) url.Values {
	v := url.Values{}
	for key, val := range m {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

func (c *APIClient) ListProperties(ctx context.Context, filters map[string]string) ([]models.Property, error) {
	var out []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties", toValues(filters), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ListFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CreateProperty(ctx context.Context, payload dto.PropertyPayload) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPost, "/properties", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateProperty(ctx context.Context, id string, payload dto.PropertyPayload) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPut, "/properties/"+url.PathEscape(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/properties/"+url.PathEscape(id), nil, nil, nil)
}

func (c *APIClient) ListFeaturedTours(ctx context.Context) ([]models.Tour, error) {
	var out []models.Tour
	if err := c.do(ctx, http.MethodGet, "/tours/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ListTours(ctx context.Context, query map[string]string) (*dto.TourList, error) {
	var out dto.TourList
	if err := c.do(ctx, http.MethodGet, "/tours", toValues(query), nil, &out); err != nil {
		return nil, err
	}
	if out.Tours == nil {
		out.Tours = []models.Tour{}
	}
	return &out, nil
}

// GetTourByID devuelve nil, nil si el tour no existe
func (c *APIClient) GetTourByID(ctx context.Context, id string) (*models.Tour, error) {
	var out models.Tour
	err := c.do(ctx, http.MethodGet, "/tours/"+url.PathEscape(id), nil, nil, &out)
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) ListUserBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) CreateBooking(ctx context.Context, payload dto.BookingPayload) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateUserBooking(ctx context.Context, id string, payload dto.BookingUpdateRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPut, "/bookings/user/"+url.PathEscape(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CancelUserBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/bookings/user/"+url.PathEscape(id)+"/cancel", nil, nil, nil)
}

func (c *APIClient) Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *APIClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
