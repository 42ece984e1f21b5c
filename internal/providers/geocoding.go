package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultGeocodingBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GeocodingAPIError is an error the geocoding API itself reported, as
// opposed to a transport failure or an undecodable response.
type GeocodingAPIError struct {
	Status  string
	Message string
}

func (e *GeocodingAPIError) Error() string {
	return fmt.Sprintf("geocoding API error: %s (%s)", e.Status, e.Message)
}

// Place is a single reverse-geocoding candidate.
type Place struct {
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
}

// GeocodingProvider resolves a coordinate pair to candidate places, best
// match first. An empty slice with a nil error means the upstream found
// nothing for the coordinates.
type GeocodingProvider interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]Place, error)
}

type geocodingService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeocodingService(apiKey string) GeocodingProvider {
	return &geocodingService{
		apiKey:  apiKey,
		baseURL: defaultGeocodingBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewGeocodingServiceWithBaseURL is used by tests to point the client at a
// fake upstream.
func NewGeocodingServiceWithBaseURL(apiKey, baseURL string) GeocodingProvider {
	return &geocodingService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodingResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

func (s *geocodingService) ReverseGeocode(ctx context.Context, lat, lon float64) ([]Place, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lon))
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating geocoding request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status code: %d", resp.StatusCode)
	}

	var apiResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("geocoding API returned malformed JSON: %w", err)
	}

	switch apiResp.Status {
	case "OK":
		return apiResp.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, &GeocodingAPIError{Status: apiResp.Status, Message: apiResp.ErrorMessage}
	}
}
