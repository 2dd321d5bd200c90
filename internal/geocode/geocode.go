package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/models"
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (models.Location, error)
}

const googleEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder calls the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:   apiKey,
		endpoint: googleEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGoogleGeocoderWithEndpoint points the client at a non-default endpoint.
// Used by tests.
func NewGoogleGeocoderWithEndpoint(apiKey, endpoint string) *GoogleGeocoder {
	g := NewGoogleGeocoder(apiKey)
	g.endpoint = endpoint
	return g
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location models.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Resolve(ctx context.Context, address string) (models.Location, error) {
	reqURL := fmt.Sprintf("%s?address=%s&key=%s", g.endpoint, url.QueryEscape(address), url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Location{}, httperr.Upstream(err, "Could not get location data")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Location{}, httperr.Upstream(err, "Could not get location data")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, httperr.Upstream(fmt.Errorf("geocoding API returned %d", resp.StatusCode), "Could not get location data")
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Location{}, httperr.Upstream(err, "Could not get location data")
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return models.Location{}, httperr.Upstream(fmt.Errorf("geocoding status %q", body.Status), "Could not get location data for the provided address")
	}

	return body.Results[0].Geometry.Location, nil
}
