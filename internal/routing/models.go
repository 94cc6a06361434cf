// Package routing provides driving route computation between two points.
package routing

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for routing operations.
var (
	// ErrProviderUnavailable indicates the routing provider is down or the circuit breaker is open.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrNoRouteFound indicates no valid route exists between the given points.
	ErrNoRouteFound = errors.New("no route found between the given points")
	// ErrRateLimitExceeded indicates the API quota has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	// ErrInvalidCoordinates indicates the provided coordinates are invalid or out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrMalformedResponse indicates the provider returned a payload with no usable route.
	ErrMalformedResponse = errors.New("malformed routing response")
)

// Provider defines the interface for routing providers.
type Provider interface {
	// GetRoute computes a driving route between origin and destination.
	GetRoute(ctx context.Context, req RouteRequest) (*RouteResponse, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// RouteRequest is the request for computing a route.
type RouteRequest struct {
	Origin      Coordinate
	Destination Coordinate
}

// RouteResponse is the computed route.
type RouteResponse struct {
	DistanceMiles   float64
	DurationSeconds float64
	Geometry        Geometry
	Provider        string
	FetchedAt       time.Time
}

// Geometry carries the route shape in whichever form the provider
// returned it. Exactly one of Path or EncodedPolyline is set.
type Geometry struct {
	Path            []Coordinate // decoded points, [lat, lon]
	EncodedPolyline string       // Google encoded polyline, precision 5
}

// IsEmpty reports whether the geometry carries no shape at all.
func (g Geometry) IsEmpty() bool {
	return len(g.Path) == 0 && g.EncodedPolyline == ""
}

// Error provides detailed error information from the routing provider.
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

// IsRetryable returns true if the error is transient and the request can be retried.
func (e *Error) IsRetryable() bool {
	return errors.Is(e.Err, ErrProviderUnavailable) || errors.Is(e.Err, ErrRateLimitExceeded)
}
