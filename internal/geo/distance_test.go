package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bagages/internal/domain/models"
)

func TestDistanceKmWithoutKeyUsesDefault(t *testing.T) {
	c := Client{}
	if got := c.DistanceKm("1 Rue du Vieux Port, Marseille", models.DestAirport); got != DefaultDistanceKm {
		t.Fatalf("expected default distance, got %.1f", got)
	}
}

func TestDistanceKmHomeDeliveryUsesDefault(t *testing.T) {
	c := Client{APIKey: "test-key"}
	if got := c.DistanceKm("1 Rue du Vieux Port, Marseille", models.DestHome); got != DefaultDistanceKm {
		t.Fatalf("home delivery must not call the API, got %.1f", got)
	}
}

func TestDistanceKmParsesMatrixResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in request")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"distance":{"value":23500}}]}]}`))
	}))
	defer srv.Close()

	c := Client{APIKey: "test-key", BaseURL: srv.URL}
	if got := c.DistanceKm("1 Rue du Vieux Port, Marseille", models.DestAirport); got != 23.5 {
		t.Fatalf("expected 23.5 km, got %.1f", got)
	}
}

func TestDistanceKmBadStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OVER_QUERY_LIMIT"}`))
	}))
	defer srv.Close()

	c := Client{APIKey: "test-key", BaseURL: srv.URL}
	if got := c.DistanceKm("adresse", models.DestStation); got != DefaultDistanceKm {
		t.Fatalf("expected default on bad status, got %.1f", got)
	}
}
