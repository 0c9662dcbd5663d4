package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bagages/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func adminRows(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return sqlmock.NewRows([]string{
		"id", "username", "password_hash", "email", "full_name", "role", "is_active", "last_login", "created_at",
	}).AddRow(1, "admin", string(hash), "admin@2av-bagages.fr", "Administrateur Principal", "admin", true, nil, time.Now())
}

func TestLoginEndpoint(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	swapDB(t, db)

	mock.ExpectQuery("SELECT (.+) FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRows(t, "secret123"))
	mock.ExpectExec("UPDATE admin_users SET last_login").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := gin.New()
	h := AuthHandler{Env: config.Env{AppEnv: "development", SecretKey: []byte("test-secret")}}
	r.POST("/admin/auth", h.Login)

	w := postJSON(r, "/admin/auth", `{"username": "admin", "password": "secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected a session token, got %+v", resp)
	}
	if cookies := w.Result().Cookies(); len(cookies) == 0 {
		t.Fatalf("expected a session cookie to be set")
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	swapDB(t, db)

	mock.ExpectQuery("SELECT (.+) FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRows(t, "autre-mot-de-passe"))

	r := gin.New()
	h := AuthHandler{Env: config.Env{AppEnv: "development", SecretKey: []byte("test-secret")}}
	r.POST("/admin/auth", h.Login)

	w := postJSON(r, "/admin/auth", `{"username": "admin", "password": "secret123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "identifiants incorrects") {
		t.Fatalf("failure message must stay generic, got %s", w.Body.String())
	}
}

func TestLogoutEndpointClearsCookie(t *testing.T) {
	r := gin.New()
	h := AuthHandler{Env: config.Env{AppEnv: "development"}}
	r.GET("/admin/logout", h.Logout)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
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
