// Package openrouteservice provides a client for the OpenRouteService geocoding API.
package openrouteservice

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"github.com/rs/zerolog"

	"github.com/fuelroute/fuelroute/internal/geocoding"
	"github.com/fuelroute/fuelroute/internal/provider/resilience"
	"github.com/fuelroute/fuelroute/internal/states"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "openrouteservice-geocode"

	// DefaultBaseURL is the OpenRouteService API base URL.
	DefaultBaseURL = "https://api.openrouteservice.org"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 10 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenRouteService geocoding client.
type ClientConfig struct {
	// APIKey is the ORS API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to ORS API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// BoundaryCountry restricts search results to a country code
	// (optional, e.g. "US").
	BoundaryCountry string

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenRouteService geocoding client.
type Client struct {
	apiKey          string
	baseURL         string
	boundaryCountry string
	httpClient      HTTPDoer
	logger          zerolog.Logger
}

// NewClient creates a new OpenRouteService geocoding client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:          cfg.APIKey,
		baseURL:         baseURL,
		boundaryCountry: cfg.BoundaryCountry,
		httpClient:      httpClient,
		logger:          cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Resolve geocodes free text to a Place using GET /geocode/search.
func (c *Client) Resolve(ctx context.Context, text string) (*geocoding.Place, error) {
	endpoint := fmt.Sprintf("%s/geocode/search", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := url.Values{}
	q.Set("text", text)
	q.Set("size", "1")
	if c.boundaryCountry != "" {
		q.Set("boundary.country", c.boundaryCountry)
	}
	httpReq.URL.RawQuery = q.Encode()
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Accept", "application/json, application/geo+json")

	c.logger.Debug().
		Str("text", text).
		Msg("geocoding place via ORS")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach geocoding provider",
			Err:      geocoding.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.Unmarshal(respBody, &geoResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(geoResp.Features) == 0 {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Code:     "NO_MATCH",
			Message:  fmt.Sprintf("could not geocode location %q", text),
			Err:      geocoding.ErrNoMatch,
		}
	}

	place, err := toPlace(&geoResp.Features[0])
	if err != nil {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Code:     "BAD_FEATURE",
			Message:  err.Error(),
			Err:      geocoding.ErrNoMatch,
		}
	}

	c.logger.Debug().
		Float64("lat", place.Coordinate.Lat).
		Float64("lon", place.Coordinate.Lon).
		Str("country", place.CountryCode).
		Str("state", place.State).
		Msg("geocoded place")

	return place, nil
}

// handleErrorResponse maps ORS error statuses to domain errors.
func (c *Client) handleErrorResponse(statusCode int) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return &geocoding.Error{
			Provider: ProviderName,
			Code:     "RATE_LIMIT",
			Message:  "API rate limit exceeded, please try again later",
			Err:      geocoding.ErrRateLimitExceeded,
		}
	case statusCode == http.StatusForbidden:
		return &geocoding.Error{
			Provider: ProviderName,
			Code:     "FORBIDDEN",
			Message:  "API access denied - check API key configuration",
			Err:      geocoding.ErrProviderUnavailable,
		}
	case statusCode >= 500:
		return &geocoding.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("SERVER_%d", statusCode),
			Message:  "geocoding provider is temporarily unavailable",
			Err:      geocoding.ErrProviderUnavailable,
		}
	default:
		return &geocoding.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", statusCode),
			Message:  fmt.Sprintf("geocoding provider returned status %d", statusCode),
			Err:      geocoding.ErrProviderUnavailable,
		}
	}
}

// toPlace converts a geocode feature to the domain model.
func toPlace(f *geocodeFeature) (*geocoding.Place, error) {
	if len(f.Geometry.Coordinates) != 2 {
		return nil, fmt.Errorf("invalid coordinate format in geocode feature")
	}

	props := f.Properties
	countryCode := strings.ToUpper(props.CountryCode)
	// Some gazetteer layers omit the ISO code but carry the country name.
	if countryCode == "" && strings.Contains(strings.ToLower(props.Country), "united states") {
		countryCode = "US"
	}

	stateRaw := props.RegionAbbrev
	if stateRaw == "" {
		stateRaw = props.Region
	}
	if stateRaw == "" {
		stateRaw = props.State
	}

	return &geocoding.Place{
		Coordinate: geocoding.Coordinate{
			// GeoJSON order is [lon, lat].
			Lon: f.Geometry.Coordinates[0],
			Lat: f.Geometry.Coordinates[1],
		},
		CountryCode: countryCode,
		State:       states.Normalize(stateRaw),
	}, nil
}
