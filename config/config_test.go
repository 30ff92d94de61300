package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsEngine(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(corsConfig(cfg)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCorsWithoutOriginsDropsCredentials(t *testing.T) {
	cfg := corsConfig(Config{})
	if cfg.AllowCredentials || !cfg.AllowAllOrigins || cfg.AllowOriginFunc != nil {
		t.Fatalf("config = %+v", cfg)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://cualquiera.example")
	w := httptest.NewRecorder()
	corsEngine(Config{}).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("Allow-Credentials = %q", got)
	}
}

func TestCorsWithOriginsAllowsCredentials(t *testing.T) {
	app := Config{AllowedOrigins: []string{"https://app.guaranihost.com.py"}}
	cfg := corsConfig(app)
	if !cfg.AllowCredentials || cfg.AllowAllOrigins {
		t.Fatalf("config = %+v", cfg)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.guaranihost.com.py")
	w := httptest.NewRecorder()
	corsEngine(app).ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.guaranihost.com.py" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("Allow-Credentials = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://otro.example")
	w = httptest.NewRecorder()
	corsEngine(app).ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin status = %d", w.Code)
	}
}

func TestLoadReadsOriginsAndDefaults(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("API_TIMEOUT", "no-es-duracion")
	t.Setenv("PORT", "")

	cfg := Load()
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %q", cfg.AllowedOrigins)
	}
	if cfg.APITimeout != 15*time.Second || cfg.Port != "8083" {
		t.Fatalf("cfg = %+v", cfg)
	}
}
