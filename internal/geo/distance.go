package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bagages/internal/domain/models"
	"bagages/internal/utils"
)

// DefaultDistanceKm is assumed whenever no lookup is possible.
const DefaultDistanceKm = 15.0

// Fixed drop-off addresses used as Distance Matrix destinations.
var destinationAddresses = map[string]string{
	models.DestAirport: "Aéroport Marseille Provence, Marignane",
	models.DestStation: "Gare Saint-Charles, Marseille",
	models.DestPort:    "Port de Marseille, Marseille",
}

// Client resolves pickup-to-destination road distance through the Google
// Distance Matrix API. Without an API key it returns DefaultDistanceKm.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func (c Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://maps.googleapis.com/maps/api/distancematrix/json"
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 5 * time.Second}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceKm returns the road distance in km from the pickup address to the
// fixed address of the destination. Home deliveries and lookup failures fall
// back to DefaultDistanceKm; errors are never surfaced to the caller.
func (c Client) DistanceKm(pickupAddress, destination string) float64 {
	destAddr, ok := destinationAddresses[destination]
	if !ok || pickupAddress == "" || c.APIKey == "" {
		return DefaultDistanceKm
	}

	params := url.Values{}
	params.Set("origins", pickupAddress)
	params.Set("destinations", destAddr)
	params.Set("key", c.APIKey)
	params.Set("units", "metric")

	resp, err := c.httpClient().Get(c.baseURL() + "?" + params.Encode())
	if err != nil {
		utils.LogEvent("", "geo", "distance_lookup", fmt.Sprintf("requete echouee: %v", err))
		return DefaultDistanceKm
	}
	defer resp.Body.Close()

	var data matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		utils.LogEvent("", "geo", "distance_lookup", fmt.Sprintf("reponse illisible: %v", err))
		return DefaultDistanceKm
	}
	if data.Status != "OK" || len(data.Rows) == 0 || len(data.Rows[0].Elements) == 0 {
		return DefaultDistanceKm
	}

	meters := data.Rows[0].Elements[0].Distance.Value
	return float64(meters) / 1000.0
}
