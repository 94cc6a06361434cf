// Package trip orchestrates route planning: geocoding, routing, state
// corridor construction, and fuel stop selection.
package trip

import (
	"fmt"

	"github.com/fuelroute/fuelroute/internal/fuel"
	"github.com/fuelroute/fuelroute/pkg/polyline"
)

// Endpoint identifiers used in errors so callers can tell which input failed.
const (
	EndpointStart = "start"
	EndpointEnd   = "end"
)

// Plan is the complete result of a route planning request.
type Plan struct {
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	DistanceMiles float64 `json:"total_distance_miles"`

	// DurationHours is nil when the routing provider omitted duration.
	DurationHours *float64 `json:"estimated_duration_hours"`

	// Corridor is the ordered list of state codes the route passes through.
	Corridor []string `json:"corridor"`
	// StatesTraveled joins the corridor's full state names with " > ".
	StatesTraveled string `json:"states_traveled"`

	LegCount     int        `json:"number_of_fuel_stops"`
	Legs         []fuel.Leg `json:"detailed_fuel_stops"`
	TotalCost    float64    `json:"total_fuel_cost_usd"`
	TotalGallons float64    `json:"total_gallons_needed"`

	// Geometry is the simplified route shape for map display.
	Geometry        []polyline.Coordinate `json:"-"`
	EncodedPolyline string                `json:"route_polyline,omitempty"`

	// StopSummaries lists cumulative-mileage stop descriptions.
	StopSummaries []string `json:"fuel_stops_breakdown"`
	// LegNarratives lists one driving instruction per leg.
	LegNarratives []string `json:"route_plan_explanation"`
}

// GeocodeError indicates a start or end location could not be resolved.
type GeocodeError struct {
	Endpoint string // EndpointStart or EndpointEnd
	Query    string
	Err      error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("could not geocode %s location %q: %v", e.Endpoint, e.Query, e.Err)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// OutOfRegionError indicates a resolved location lies outside the USA.
type OutOfRegionError struct {
	Endpoint string // EndpointStart or EndpointEnd
	Query    string
}

func (e *OutOfRegionError) Error() string {
	return fmt.Sprintf("%s location %q must be inside the USA", e.Endpoint, e.Query)
}
