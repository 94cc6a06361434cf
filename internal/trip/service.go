package trip

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuelroute/fuelroute/internal/fuel"
	"github.com/fuelroute/fuelroute/internal/geocoding"
	"github.com/fuelroute/fuelroute/internal/routing"
	"github.com/fuelroute/fuelroute/internal/states"
	"github.com/fuelroute/fuelroute/pkg/polyline"
)

// DefaultSimplifyTolerance is the simplification tolerance in degrees
// applied to route geometry before it is returned to clients.
const DefaultSimplifyTolerance = 0.01

// MetricsRecorder records timing for outbound provider calls.
type MetricsRecorder interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// Config holds dependencies for the trip service.
type Config struct {
	// Geocoder resolves free-text locations to coordinates (required).
	Geocoder geocoding.Provider

	// Router computes driving routes (required).
	Router routing.Provider

	// Planner selects fuel stops along the corridor (required).
	Planner *fuel.Planner

	// SimplifyTolerance overrides the geometry simplification tolerance
	// (optional, defaults to DefaultSimplifyTolerance).
	SimplifyTolerance float64

	// Metrics records provider call timings (optional).
	Metrics MetricsRecorder

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service plans trips end to end.
type Service struct {
	geocoder  geocoding.Provider
	router    routing.Provider
	planner   *fuel.Planner
	tolerance float64
	metrics   MetricsRecorder
	logger    zerolog.Logger
}

// NewService creates a new trip service.
func NewService(cfg Config) *Service {
	tolerance := cfg.SimplifyTolerance
	if tolerance <= 0 {
		tolerance = DefaultSimplifyTolerance
	}

	return &Service{
		geocoder:  cfg.Geocoder,
		router:    cfg.Router,
		planner:   cfg.Planner,
		tolerance: tolerance,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
	}
}

// Plan resolves both locations, computes the route, and lays out fuel
// stops. The routing provider is called exactly once per invocation.
func (s *Service) Plan(ctx context.Context, start, end string) (*Plan, error) {
	startPlace, endPlace, err := s.geocodeBoth(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if !isUSALocation(startPlace) {
		return nil, &OutOfRegionError{Endpoint: EndpointStart, Query: start}
	}
	if !isUSALocation(endPlace) {
		return nil, &OutOfRegionError{Endpoint: EndpointEnd, Query: end}
	}

	// The single routing provider call for this request.
	routeStart := time.Now()
	route, err := s.router.GetRoute(ctx, routing.RouteRequest{
		Origin:      routing.Coordinate{Lat: startPlace.Coordinate.Lat, Lon: startPlace.Coordinate.Lon},
		Destination: routing.Coordinate{Lat: endPlace.Coordinate.Lat, Lon: endPlace.Coordinate.Lon},
	})
	s.record(s.router.Name(), "directions", routeStart, err)
	if err != nil {
		return nil, err
	}

	geometry, encoded, err := s.prepareGeometry(route)
	if err != nil {
		return nil, err
	}

	corridor := states.Corridor(startPlace.State, endPlace.State)

	plan, err := s.planner.Plan(ctx, route.DistanceMiles, corridor)
	if err != nil {
		return nil, err
	}

	result := &Plan{
		StartLocation:   start,
		EndLocation:     end,
		DistanceMiles:   round2(route.DistanceMiles),
		DurationHours:   durationHours(route.DurationSeconds),
		Corridor:        corridor,
		StatesTraveled:  statesTraveled(corridor),
		LegCount:        len(plan.Legs),
		Legs:            plan.Legs,
		TotalCost:       plan.TotalCost,
		TotalGallons:    plan.TotalGallons,
		Geometry:        geometry,
		EncodedPolyline: encoded,
	}
	result.StopSummaries, result.LegNarratives = summarize(plan.Legs)

	s.logger.Info().
		Str("start", start).
		Str("end", end).
		Float64("distance_miles", result.DistanceMiles).
		Int("fuel_stops", result.LegCount).
		Float64("total_cost", result.TotalCost).
		Msg("planned trip")

	return result, nil
}

// geocodeBoth resolves the start and end locations concurrently.
func (s *Service) geocodeBoth(ctx context.Context, start, end string) (*geocoding.Place, *geocoding.Place, error) {
	type result struct {
		place *geocoding.Place
		err   error
	}

	queries := []string{start, end}
	results := make([]result, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			began := time.Now()
			place, err := s.geocoder.Resolve(ctx, q)
			s.record(s.geocoder.Name(), "geocode", began, err)
			results[i] = result{place: place, err: err}
		}(i, q)
	}
	wg.Wait()

	if results[0].err != nil {
		return nil, nil, &GeocodeError{Endpoint: EndpointStart, Query: start, Err: results[0].err}
	}
	if results[1].err != nil {
		return nil, nil, &GeocodeError{Endpoint: EndpointEnd, Query: end, Err: results[1].err}
	}

	return results[0].place, results[1].place, nil
}

// record reports a provider call to the metrics recorder, if configured.
func (s *Service) record(provider, operation string, began time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRequest(provider, operation, time.Since(began), err)
}

// prepareGeometry normalizes the route shape to a coordinate list,
// simplifies it, and re-encodes it for the response. Routes without
// geometry are passed through empty.
func (s *Service) prepareGeometry(route *routing.RouteResponse) ([]polyline.Coordinate, string, error) {
	var coords []polyline.Coordinate

	switch {
	case route.Geometry.EncodedPolyline != "":
		decoded, err := polyline.Decode(route.Geometry.EncodedPolyline, polyline.DefaultPrecision)
		if err != nil {
			return nil, "", &routing.Error{
				Provider: route.Provider,
				Code:     "BAD_GEOMETRY",
				Message:  "route geometry could not be decoded",
				Err:      routing.ErrMalformedResponse,
			}
		}
		coords = decoded
	case len(route.Geometry.Path) > 0:
		coords = make([]polyline.Coordinate, 0, len(route.Geometry.Path))
		for _, p := range route.Geometry.Path {
			coords = append(coords, polyline.Coordinate{Lat: p.Lat, Lon: p.Lon})
		}
	default:
		return nil, "", nil
	}

	simplified := polyline.Simplify(coords, s.tolerance)
	return simplified, polyline.Encode(simplified, polyline.DefaultPrecision), nil
}

// isUSALocation requires both the provider's country code and the
// bounding box check to agree.
func isUSALocation(place *geocoding.Place) bool {
	return place.CountryCode == "US" && InsideUSA(place.Coordinate.Lat, place.Coordinate.Lon)
}

// durationHours converts seconds to hours rounded to 2 decimals.
// Returns nil when the provider reported no duration.
func durationHours(seconds float64) *float64 {
	if seconds <= 0 {
		return nil
	}
	hours := round2(seconds / 3600.0)
	return &hours
}

// statesTraveled joins the corridor's full state names.
func statesTraveled(corridor []string) string {
	names := make([]string, 0, len(corridor))
	for _, code := range corridor {
		name := states.FullName(code)
		if name == "" {
			name = code
		}
		names = append(names, name)
	}
	return strings.Join(names, " > ")
}

// summarize builds the cumulative-mileage stop list and the per-leg
// narrative lines from the planned legs.
func summarize(legs []fuel.Leg) (stops []string, narratives []string) {
	stops = make([]string, 0, len(legs))
	narratives = make([]string, 0, len(legs))

	milesSoFar := 0.0
	for _, leg := range legs {
		milesSoFar += leg.DistanceMiles

		stateName := "N/A"
		stationName := "N/A"
		costText := "N/A"
		if leg.Station != nil {
			if name := states.FullName(leg.Station.State); name != "" {
				stateName = name
			}
			stationName = leg.Station.Name
		}
		if leg.Cost != nil {
			costText = fmt.Sprintf("%.2f", *leg.Cost)
		}

		stops = append(stops, fmt.Sprintf(
			"After %.0f mi: %s, %s ($%s)",
			milesSoFar, stateName, stationName, costText,
		))
		narratives = append(narratives, fmt.Sprintf(
			"Drive %.2f miles, stop in %s at %s, buy %.2f gallons for $%s.",
			leg.DistanceMiles, stateName, stationName, leg.Gallons, costText,
		))
	}

	return stops, narratives
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
