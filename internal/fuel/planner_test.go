package fuel

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func newTestPlanner(t *testing.T, repo Repository) *Planner {
	t.Helper()
	return NewPlanner(PlannerConfig{
		Repository: repo,
		Logger:     zerolog.Nop(),
	})
}

func TestPlanner_LegCount(t *testing.T) {
	tests := []struct {
		name          string
		totalDistance float64
		expectedLegs  int
		lastDistance  float64
	}{
		{name: "short trip is one leg", totalDistance: 120, expectedLegs: 1, lastDistance: 120},
		{name: "exact multiple", totalDistance: 1000, expectedLegs: 2, lastDistance: 500},
		{name: "partial last leg", totalDistance: 1200, expectedLegs: 3, lastDistance: 200},
		{name: "zero distance still yields one leg", totalDistance: 0, expectedLegs: 1, lastDistance: 0},
	}

	repo := NewInMemoryRepository(Station{Name: "Pilot", State: "NY", PricePerGallon: 3.50})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := newTestPlanner(t, repo)
			result, err := planner.Plan(context.Background(), tt.totalDistance, []string{"NY"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Legs) != tt.expectedLegs {
				t.Fatalf("expected %d legs, got %d", tt.expectedLegs, len(result.Legs))
			}

			last := result.Legs[len(result.Legs)-1]
			if last.DistanceMiles != tt.lastDistance {
				t.Errorf("last leg distance: expected %v, got %v", tt.lastDistance, last.DistanceMiles)
			}
			if result.Legs[0].Index != 1 {
				t.Errorf("leg indexes must be 1-based, got %d", result.Legs[0].Index)
			}
		})
	}
}

func TestPlanner_CostAccumulatesRoundedLegCosts(t *testing.T) {
	// 1200 miles at 10 MPG in 500-mile legs: gallons 50, 50, 20 at $3.50
	// gives 175.00 + 175.00 + 70.00 = 420.00.
	repo := NewInMemoryRepository(Station{Name: "Flying J", State: "NY", PricePerGallon: 3.50})
	planner := newTestPlanner(t, repo)

	result, err := planner.Plan(context.Background(), 1200, []string{"NY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedGallons := []float64{50.0, 50.0, 20.0}
	expectedCosts := []float64{175.00, 175.00, 70.00}
	for i, leg := range result.Legs {
		if leg.Gallons != expectedGallons[i] {
			t.Errorf("leg %d gallons: expected %v, got %v", i, expectedGallons[i], leg.Gallons)
		}
		if leg.Cost == nil || *leg.Cost != expectedCosts[i] {
			t.Errorf("leg %d cost: expected %v, got %v", i, expectedCosts[i], leg.Cost)
		}
	}

	if result.TotalCost != 420.00 {
		t.Errorf("total cost: expected 420.00, got %v", result.TotalCost)
	}
	if result.TotalGallons != 120.00 {
		t.Errorf("total gallons: expected 120.00, got %v", result.TotalGallons)
	}
}

func TestPlanner_StateAssignmentClampsToCorridorEnd(t *testing.T) {
	repo := NewInMemoryRepository(
		Station{Name: "A", State: "NY", PricePerGallon: 3.20},
		Station{Name: "B", State: "PA", PricePerGallon: 3.10},
	)
	planner := newTestPlanner(t, repo)

	// 4 legs over a 2-state corridor: legs 3 and 4 clamp to PA.
	result, err := planner.Plan(context.Background(), 1900, []string{"NY", "PA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedStates := []string{"NY", "PA", "PA", "PA"}
	for i, leg := range result.Legs {
		if leg.State != expectedStates[i] {
			t.Errorf("leg %d state: expected %s, got %s", i, expectedStates[i], leg.State)
		}
	}
}

func TestPlanner_FallsBackToCheapestInCorridor(t *testing.T) {
	// NJ has no stations; the leg assigned to NJ gets the corridor-wide
	// cheapest (PA at 3.05), not an error or empty stop.
	repo := NewInMemoryRepository(
		Station{Name: "A", State: "NY", PricePerGallon: 3.40},
		Station{Name: "B", State: "PA", PricePerGallon: 3.05},
	)
	planner := newTestPlanner(t, repo)

	result, err := planner.Plan(context.Background(), 1100, []string{"NY", "NJ", "PA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	njLeg := result.Legs[1]
	if njLeg.State != "NJ" {
		t.Fatalf("expected NJ leg, got %s", njLeg.State)
	}
	if njLeg.Station == nil {
		t.Fatal("expected fallback station for NJ leg")
	}
	if njLeg.Station.State != "PA" || njLeg.Station.PricePerGallon != 3.05 {
		t.Errorf("expected cheapest corridor station (PA @ 3.05), got %+v", njLeg.Station)
	}
}

func TestPlanner_NoStationsAnywhere(t *testing.T) {
	repo := NewInMemoryRepository()
	planner := newTestPlanner(t, repo)

	result, err := planner.Plan(context.Background(), 700, []string{"MT", "WY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, leg := range result.Legs {
		if leg.Station != nil {
			t.Errorf("leg %d: expected no station, got %+v", i, leg.Station)
		}
		if leg.Cost != nil {
			t.Errorf("leg %d: expected nil cost, got %v", i, *leg.Cost)
		}
		if leg.Gallons == 0 {
			t.Errorf("leg %d: gallons must still be computed", i)
		}
	}

	if result.TotalCost != 0 {
		t.Errorf("expected zero total cost, got %v", result.TotalCost)
	}
}

func TestPlanner_EmptyCorridor(t *testing.T) {
	repo := NewInMemoryRepository(Station{Name: "A", State: "NY", PricePerGallon: 3.40})
	planner := newTestPlanner(t, repo)

	result, err := planner.Plan(context.Background(), 300, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(result.Legs))
	}
	if result.Legs[0].State != "" {
		t.Errorf("expected unassigned state, got %q", result.Legs[0].State)
	}
	if result.Legs[0].Station != nil {
		t.Errorf("expected no station without a corridor, got %+v", result.Legs[0].Station)
	}
}

func TestPlanner_Defaults(t *testing.T) {
	planner := NewPlanner(PlannerConfig{Repository: NewInMemoryRepository()})
	if planner.RangeMiles() != DefaultRangeMiles {
		t.Errorf("expected default range %v, got %v", DefaultRangeMiles, planner.RangeMiles())
	}
	if planner.MilesPerGallon() != DefaultMilesPerGallon {
		t.Errorf("expected default mpg %v, got %v", DefaultMilesPerGallon, planner.MilesPerGallon())
	}
}
