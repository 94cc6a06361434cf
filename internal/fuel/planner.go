package fuel

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

// Default vehicle parameters.
const (
	// DefaultRangeMiles is how far the vehicle travels on a full tank.
	DefaultRangeMiles = 500.0

	// DefaultMilesPerGallon is the assumed fuel efficiency.
	DefaultMilesPerGallon = 10.0
)

// PlannerConfig holds configuration for the leg planner.
type PlannerConfig struct {
	// Repository is the fuel price store (required).
	Repository Repository

	// RangeMiles is the vehicle range per tank (default 500).
	RangeMiles float64

	// MilesPerGallon is the fuel efficiency (default 10).
	MilesPerGallon float64

	// Logger for planner operations.
	Logger zerolog.Logger
}

// Planner splits a total route distance into fixed-range legs and assigns a
// cost-optimal station to each.
type Planner struct {
	repo       Repository
	rangeMiles float64
	mpg        float64
	logger     zerolog.Logger
}

// NewPlanner creates a new leg planner.
func NewPlanner(cfg PlannerConfig) *Planner {
	rangeMiles := cfg.RangeMiles
	if rangeMiles <= 0 {
		rangeMiles = DefaultRangeMiles
	}

	mpg := cfg.MilesPerGallon
	if mpg <= 0 {
		mpg = DefaultMilesPerGallon
	}

	return &Planner{
		repo:       cfg.Repository,
		rangeMiles: rangeMiles,
		mpg:        mpg,
		logger:     cfg.Logger,
	}
}

// RangeMiles returns the configured vehicle range.
func (p *Planner) RangeMiles() float64 { return p.rangeMiles }

// MilesPerGallon returns the configured fuel efficiency.
func (p *Planner) MilesPerGallon() float64 { return p.mpg }

// Plan segments totalDistance into range-sized legs and picks a station per
// leg: the cheapest in the leg's corridor state, falling back to the cheapest
// anywhere in the corridor. The fallback ignores distance from the leg; it
// trades accuracy for availability and is a known approximation.
func (p *Planner) Plan(ctx context.Context, totalDistance float64, corridor []string) (*PlanResult, error) {
	legCount := int(math.Ceil(totalDistance / p.rangeMiles))
	if legCount < 1 {
		legCount = 1
	}

	cheapest, err := p.cheapestStations(ctx, corridor)
	if err != nil {
		return nil, err
	}
	fallback := cheapestOverall(corridor, cheapest)

	result := &PlanResult{
		Legs:         make([]Leg, 0, legCount),
		TotalGallons: round2(totalDistance / p.mpg),
	}

	for i := 0; i < legCount; i++ {
		legStart := float64(i) * p.rangeMiles
		legEnd := math.Min(totalDistance, float64(i+1)*p.rangeMiles)
		legDistance := legEnd - legStart

		leg := Leg{
			Index:         i + 1,
			StartMile:     legStart,
			EndMile:       legEnd,
			DistanceMiles: round2(legDistance),
			Gallons:       round2(legDistance / p.mpg),
		}

		// Excess legs clamp to the corridor's last state.
		if len(corridor) > 0 {
			leg.State = corridor[min(i, len(corridor)-1)]
		}

		station, ok := cheapest[leg.State]
		if !ok && fallback != nil {
			station = *fallback
			ok = true
		}
		if ok {
			s := station
			cost := round2(leg.Gallons * s.PricePerGallon)
			leg.Station = &s
			leg.Cost = &cost
			result.TotalCost += cost
		}

		result.Legs = append(result.Legs, leg)
	}

	result.TotalCost = round2(result.TotalCost)

	p.logger.Debug().
		Float64("total_distance_miles", totalDistance).
		Int("leg_count", legCount).
		Float64("total_cost", result.TotalCost).
		Msg("fuel legs planned")

	return result, nil
}

// cheapestStations fetches the cheapest station per corridor state in one
// batched query.
func (p *Planner) cheapestStations(ctx context.Context, corridor []string) (map[string]Station, error) {
	if len(corridor) == 0 {
		return map[string]Station{}, nil
	}
	return p.repo.CheapestByState(ctx, corridor)
}

// cheapestOverall returns the cheapest station across the whole corridor,
// breaking price ties by corridor order.
func cheapestOverall(corridor []string, byState map[string]Station) *Station {
	var best *Station
	for _, state := range corridor {
		station, ok := byState[state]
		if !ok {
			continue
		}
		if best == nil || station.PricePerGallon < best.PricePerGallon {
			s := station
			best = &s
		}
	}
	return best
}
