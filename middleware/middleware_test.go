package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"guaranihost/models"
	"guaranihost/services/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func engine(handlers ...gin.HandlerFunc) (*gin.Engine, *models.Session) {
	var seen models.Session
	r := gin.New()
	r.Use(SessionMiddleware(), OptionalAuth())
	chain := append(handlers, func(c *gin.Context) {
		seen = CurrentSession(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/", chain...)
	return r, &seen
}

func serve(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddlewareAssignsID(t *testing.T) {
	r, seen := engine()

	w := serve(r, nil)
	generated := w.Header().Get(SessionHeader)
	if generated == "" || seen.ID != generated {
		t.Fatalf("header = %q session = %q", generated, seen.ID)
	}

	w = serve(r, map[string]string{SessionHeader: "abc"})
	if w.Header().Get(SessionHeader) != "abc" || seen.ID != "abc" {
		t.Fatalf("header = %q session = %q", w.Header().Get(SessionHeader), seen.ID)
	}
}

func TestSessionIDFromQuery(t *testing.T) {
	r, seen := engine()
	req := httptest.NewRequest(http.MethodGet, "/?sessionId=ws-1", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if seen.ID != "ws-1" {
		t.Fatalf("session = %q", seen.ID)
	}
}

func TestOptionalAuth(t *testing.T) {
	r, seen := engine()
	tok := token(t, jwt.MapClaims{"userinfo": map[string]interface{}{"userid": 7, "role": "guest"}})

	serve(r, map[string]string{"Authorization": "Bearer " + tok, SessionHeader: "s1"})
	if !seen.Authenticated() || seen.UserID != "7" || seen.Role != "guest" || seen.ID != "u:7:s1" || seen.Token != tok {
		t.Fatalf("session = %+v", *seen)
	}

	serve(r, map[string]string{"Authorization": "Bearer basura", SessionHeader: "s1"})
	if seen.Authenticated() || seen.ID != "s1" {
		t.Fatalf("invalid token should be anonymous: %+v", *seen)
	}
}

func TestSessionBoundToUser(t *testing.T) {
	var ids []string
	r := gin.New()
	r.Use(SessionMiddleware(), OptionalAuth())
	r.GET("/", func(c *gin.Context) {
		if SessionID(c) != CurrentSession(c).ID {
			t.Errorf("SessionID = %q session = %q", SessionID(c), CurrentSession(c).ID)
		}
		ids = append(ids, SessionID(c))
		c.Status(http.StatusNoContent)
	})

	ana := token(t, jwt.MapClaims{"sub": "ana"})
	beto := token(t, jwt.MapClaims{"sub": "beto"})
	serve(r, map[string]string{"Authorization": "Bearer " + ana, SessionHeader: "compartido"})
	serve(r, map[string]string{"Authorization": "Bearer " + beto, SessionHeader: "compartido"})
	serve(r, map[string]string{SessionHeader: "compartido"})

	// websocket: sin headers, token y sesión por query
	req := httptest.NewRequest(http.MethodGet, "/?sessionId=compartido&token="+ana, nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	want := []string{"u:ana:compartido", "u:beto:compartido", "compartido", "u:ana:compartido"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("ids = %v", ids)
	}
}

func TestRequireAuth(t *testing.T) {
	r, _ := engine(RequireAuth())
	if w := serve(r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", w.Code)
	}
	tok := token(t, jwt.MapClaims{"sub": "u1"})
	if w := serve(r, map[string]string{"Authorization": "Bearer " + tok}); w.Code != http.StatusNoContent {
		t.Fatalf("authenticated status = %d", w.Code)
	}
}

func TestRequireAuthRoles(t *testing.T) {
	r, _ := engine(RequireAuth("host", "admin"))

	guest := token(t, jwt.MapClaims{"sub": "u1", "role": "guest"})
	if w := serve(r, map[string]string{"Authorization": "Bearer " + guest}); w.Code != http.StatusForbidden {
		t.Fatalf("guest status = %d", w.Code)
	}
	host := token(t, jwt.MapClaims{"sub": "u2", "role": "host"})
	if w := serve(r, map[string]string{"Authorization": "Bearer " + host}); w.Code != http.StatusNoContent {
		t.Fatalf("host status = %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logger.NewLogger(logger.InfoLevel, &buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	out := buf.String()
	if !strings.Contains(out, "GET /ok") || !strings.Contains(out, "200") {
		t.Fatalf("missing ok line: %s", out)
	}
	if !strings.Contains(out, "GET /boom") || !strings.Contains(out, "502") {
		t.Fatalf("missing error line: %s", out)
	}
}
