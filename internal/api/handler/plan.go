package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fuelroute/fuelroute/internal/api/models"
	"github.com/fuelroute/fuelroute/internal/api/response"
	"github.com/fuelroute/fuelroute/internal/geocoding"
	"github.com/fuelroute/fuelroute/internal/provider/resilience"
	"github.com/fuelroute/fuelroute/internal/routing"
	"github.com/fuelroute/fuelroute/internal/trip"
)

// TripPlanner plans a trip between two free-text locations.
type TripPlanner interface {
	Plan(ctx context.Context, start, end string) (*trip.Plan, error)
}

// PlanHandler handles route planning endpoints.
type PlanHandler struct {
	trips      TripPlanner
	mpg        float64
	rangeMiles float64
}

// NewPlanHandler creates a new PlanHandler. The vehicle MPG and range are
// echoed in responses so clients can explain the fuel math.
func NewPlanHandler(trips TripPlanner, mpg, rangeMiles float64) *PlanHandler {
	return &PlanHandler{
		trips:      trips,
		mpg:        mpg,
		rangeMiles: rangeMiles,
	}
}

// PlanRoute handles POST /v1/routes:plan - plan a route with fuel stops.
func (h *PlanHandler) PlanRoute(w http.ResponseWriter, r *http.Request) {
	var input models.RoutePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	input.Start = strings.TrimSpace(input.Start)
	input.End = strings.TrimSpace(input.End)

	var fieldErrors []models.FieldError
	if input.Start == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "start", Message: "required"})
	}
	if input.End == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "end", Message: "required"})
	}
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "start and end locations are required", fieldErrors)
		return
	}

	plan, err := h.trips.Plan(r.Context(), input.Start, input.End)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, h.toResponse(plan))
}

// respondError maps planning errors to problem+json responses.
func (h *PlanHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var geocodeErr *trip.GeocodeError
	if errors.As(err, &geocodeErr) {
		if errors.Is(err, geocoding.ErrNoMatch) {
			response.BadRequest(w, r,
				fmt.Sprintf("could not find the %s location", geocodeErr.Endpoint),
				[]models.FieldError{{Field: geocodeErr.Endpoint, Message: "no geocoding match"}})
			return
		}
		response.ServiceUnavailable(w, r, "geocoding provider is unavailable, try again later")
		return
	}

	var regionErr *trip.OutOfRegionError
	if errors.As(err, &regionErr) {
		response.BadRequest(w, r,
			fmt.Sprintf("the %s location must be inside the USA", regionErr.Endpoint),
			[]models.FieldError{{Field: regionErr.Endpoint, Message: "outside the USA"}})
		return
	}

	switch {
	case errors.Is(err, routing.ErrNoRouteFound):
		response.BadRequest(w, r, "no drivable route found between the given locations", nil)
	case errors.Is(err, routing.ErrInvalidCoordinates):
		response.BadRequest(w, r, "the resolved coordinates could not be routed", nil)
	case errors.Is(err, routing.ErrMalformedResponse):
		response.BadGateway(w, r, "the routing provider returned an unusable response")
	case errors.Is(err, routing.ErrRateLimitExceeded),
		errors.Is(err, geocoding.ErrRateLimitExceeded):
		response.ServiceUnavailable(w, r, "provider rate limit reached, try again later")
	case errors.Is(err, routing.ErrProviderUnavailable),
		errors.Is(err, geocoding.ErrProviderUnavailable),
		errors.Is(err, resilience.ErrCircuitOpen),
		errors.Is(err, context.DeadlineExceeded):
		response.ServiceUnavailable(w, r, "routing provider is unavailable, try again later")
	default:
		response.InternalError(w, r, "could not plan the route")
	}
}

func (h *PlanHandler) toResponse(plan *trip.Plan) models.RoutePlanResponse {
	stops := make([]models.FuelStop, 0, len(plan.Legs))
	for _, leg := range plan.Legs {
		stop := models.FuelStop{
			SegmentIndex:         leg.Index,
			SegmentDistanceMiles: leg.DistanceMiles,
			State:                leg.State,
			GallonsPurchased:     leg.Gallons,
			Cost:                 leg.Cost,
		}
		if leg.Station != nil {
			stop.Station = &models.StopStation{
				Name:           leg.Station.Name,
				Address:        leg.Station.Address,
				City:           leg.Station.City,
				State:          leg.Station.State,
				PricePerGallon: leg.Station.PricePerGallon,
			}
		}
		stops = append(stops, stop)
	}

	mapData := models.MapData{EncodedPolyline: plan.EncodedPolyline}
	if len(plan.Geometry) > 0 {
		coords := make([][]float64, 0, len(plan.Geometry))
		for _, c := range plan.Geometry {
			coords = append(coords, []float64{c.Lon, c.Lat})
		}
		mapData.RouteGeoJSON = &models.GeoJSONLineString{
			Type:        "LineString",
			Coordinates: coords,
		}
	}

	return models.RoutePlanResponse{
		RouteSummary: models.RouteSummary{
			StartLocation:          plan.StartLocation,
			EndLocation:            plan.EndLocation,
			TotalDistanceMiles:     plan.DistanceMiles,
			EstimatedDurationHours: plan.DurationHours,
			StatesTraveled:         plan.StatesTraveled,
			NumberOfFuelStops:      plan.LegCount,
		},
		FuelCostSummary: models.FuelCostSummary{
			TotalFuelCostUSD:   plan.TotalCost,
			TotalGallonsNeeded: plan.TotalGallons,
			VehicleMPG:         h.mpg,
			MaxRangeMiles:      h.rangeMiles,
			FuelStopsBreakdown: plan.StopSummaries,
		},
		FuelStops:   stops,
		Explanation: plan.LegNarratives,
		MapData:     mapData,
	}
}
