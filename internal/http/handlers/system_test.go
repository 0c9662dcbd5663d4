package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bagages/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestHealthEndpoint(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	swapDB(t, db)

	mock.ExpectPing()

	r := gin.New()
	h := SystemHandler{Env: config.Env{AppEnv: "development"}}
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"healthy"`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"environment":"development"`) {
		t.Fatalf("health body must expose the environment: %s", w.Body.String())
	}
}

func TestHealthEndpointWithoutDB(t *testing.T) {
	swapDB(t, nil)

	r := gin.New()
	h := SystemHandler{Env: config.Env{AppEnv: "development"}}
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}
