// Package fuel provides the fuel price store and the fixed-range leg planner
// that selects a cost-optimal station for each leg of a route.
package fuel

import (
	"math"
	"time"
)

// Station is a fuel station with its retail price per gallon.
// Stations are unique per (Name, State).
type Station struct {
	ID             int64     `json:"id,omitempty"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state"`
	PricePerGallon float64   `json:"pricePerGallon"`
	CreatedAt      time.Time `json:"-"`
}

// Leg is one fixed-range segment of a route with its assigned fuel stop.
type Leg struct {
	// Index is 1-based.
	Index         int     `json:"index"`
	StartMile     float64 `json:"startMile"`
	EndMile       float64 `json:"endMile"`
	DistanceMiles float64 `json:"distanceMiles"`

	// State is the corridor state assigned to this leg, "" when the
	// corridor is empty.
	State string `json:"state,omitempty"`

	// Station is the selected fuel stop, nil when no station was found
	// anywhere in the corridor. A nil station is a valid outcome, not an
	// error.
	Station *Station `json:"station,omitempty"`

	Gallons float64 `json:"gallons"`

	// Cost is nil when no station was resolved for this leg.
	Cost *float64 `json:"cost,omitempty"`
}

// PlanResult is the output of the leg planner.
type PlanResult struct {
	Legs         []Leg   `json:"legs"`
	TotalCost    float64 `json:"totalCost"`
	TotalGallons float64 `json:"totalGallons"`
}

// round2 rounds to two decimal places. Per-leg gallons and costs are rounded
// at emission and the rounded costs are what TotalCost sums, so cent-level
// totals are stable.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
