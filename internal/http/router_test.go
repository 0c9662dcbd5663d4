package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "bagages/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testEnv() intconfig.Env {
	return intconfig.Env{
		AppEnv:             "development",
		SecretKey:          []byte("test-secret"),
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nulle-part", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "route introuvable") {
		t.Fatalf("unexpected 404 body: %s", w.Body.String())
	}
}

func TestRouterProtectsAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	for _, path := range []string{"/admin", "/admin/bookings", "/admin/logout", "/api/stats"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouterLogoutWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := testEnv()
	r := NewRouter(env)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": int64(1),
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(env.SecretKey)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expired session cookie, got %+v", cookies)
	}
}

func TestRouterSetsCORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	req := httptest.NewRequest(http.MethodOptions, "/booking", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected CORS origin echo, got %q (status %d)", got, w.Code)
	}
}

func TestRouterRequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nulle-part", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID response header")
	}
}
