package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hikersclub/campgrounds/internal/logger"
	"github.com/hikersclub/campgrounds/internal/models"
)

// GeocoderHTTPFacade resolves free-text locations to coordinates
// through the provider's forward-geocoding REST API.
type GeocoderHTTPFacade struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewGeocoderHTTPFacade creates a facade for the given provider
// endpoint with a bounded request timeout.
func NewGeocoderHTTPFacade(baseURL, accessToken string, timeout time.Duration) *GeocoderHTTPFacade {
	return &GeocoderHTTPFacade{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}
}

// geocodeResponse is the subset of the provider response we consume.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Forward resolves a location string to its single top-ranked match.
// Returns (nil, nil) when the provider has no match for the query.
func (f *GeocoderHTTPFacade) Forward(ctx context.Context, query string) (*models.GeoPoint, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?limit=1&access_token=%s",
		f.baseURL, url.PathEscape(query), url.QueryEscape(f.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("geocoding request failed", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("geocoding provider returned non-200", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode geocoding response", "query", query, "error", err)
		return nil, err
	}

	if len(body.Features) == 0 {
		logger.Log.Infow("geocoding returned no features", "query", query)
		return nil, nil
	}

	coords := body.Features[0].Geometry.Coordinates
	if len(coords) < 2 {
		return nil, fmt.Errorf("geocoding feature has malformed coordinates")
	}

	point := models.NewGeoPoint(coords[0], coords[1])

	logger.Log.Infow("geocoded location",
		"query", query,
		"longitude", coords[0],
		"latitude", coords[1],
	)

	return &point, nil
}
