// Package geocoding resolves free-text locations to coordinates.
package geocoding

import (
	"context"
	"errors"
)

// Sentinel errors for geocoding operations.
var (
	// ErrNoMatch indicates the provider found no result for the query text.
	ErrNoMatch = errors.New("no geocoding match found")
	// ErrProviderUnavailable indicates the geocoding provider is down or unreachable.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
	// ErrRateLimitExceeded indicates the API quota has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Place is a resolved location.
type Place struct {
	// Coordinate is the best-match point for the query.
	Coordinate Coordinate

	// CountryCode is the uppercase ISO country code, "" when the provider
	// did not report one.
	CountryCode string

	// State is the normalized 2-letter US state code, "" when unknown or
	// not a US location.
	State string
}

// Provider defines the interface for geocoding providers.
type Provider interface {
	// Resolve geocodes free text to a Place. Returns ErrNoMatch (wrapped)
	// when the provider has no result.
	Resolve(ctx context.Context, text string) (*Place, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Error provides detailed error information from the geocoding provider.
type Error struct {
	Provider string // Provider that generated the error
	Code     string // Error code from the provider
	Message  string // Human-readable error message
	Err      error  // Underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
