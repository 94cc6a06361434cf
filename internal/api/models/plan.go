package models

// RoutePlanRequest is the request body for POST /v1/routes:plan.
type RoutePlanRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RoutePlanResponse is the full route plan with fuel stops.
type RoutePlanResponse struct {
	RouteSummary    RouteSummary    `json:"routeSummary"`
	FuelCostSummary FuelCostSummary `json:"fuelCostSummary"`
	FuelStops       []FuelStop      `json:"detailedFuelStops"`
	Explanation     []string        `json:"routePlanExplanation"`
	MapData         MapData         `json:"mapData"`
}

// RouteSummary describes the overall route.
type RouteSummary struct {
	StartLocation          string   `json:"startLocation"`
	EndLocation            string   `json:"endLocation"`
	TotalDistanceMiles     float64  `json:"totalDistanceMiles"`
	EstimatedDurationHours *float64 `json:"estimatedDurationHours"`
	StatesTraveled         string   `json:"statesTraveled"`
	NumberOfFuelStops      int      `json:"numberOfFuelStops"`
}

// FuelCostSummary aggregates the fuel economics of the trip.
type FuelCostSummary struct {
	TotalFuelCostUSD   float64  `json:"totalFuelCostUsd"`
	TotalGallonsNeeded float64  `json:"totalGallonsNeeded"`
	VehicleMPG         float64  `json:"vehicleMpg"`
	MaxRangeMiles      float64  `json:"maxRangeMiles"`
	FuelStopsBreakdown []string `json:"fuelStopsBreakdown"`
}

// FuelStop is one fuel segment of the trip.
type FuelStop struct {
	SegmentIndex         int          `json:"segmentIndex"`
	SegmentDistanceMiles float64      `json:"segmentDistanceMiles"`
	State                string       `json:"state,omitempty"`
	Station              *StopStation `json:"station"`
	GallonsPurchased     float64      `json:"gallonsPurchased"`
	Cost                 *float64     `json:"cost"`
}

// StopStation is the station chosen for a fuel stop.
type StopStation struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	PricePerGallon float64 `json:"pricePerGallon"`
}

// MapData carries the route shape for map display.
type MapData struct {
	// RouteGeoJSON is a GeoJSON LineString, nil when the provider
	// returned no geometry.
	RouteGeoJSON *GeoJSONLineString `json:"routeGeojson"`
	// EncodedPolyline is the simplified route as a Google encoded
	// polyline (precision 5).
	EncodedPolyline string `json:"encodedPolyline,omitempty"`
}

// GeoJSONLineString is a GeoJSON LineString with [lon, lat] pairs.
type GeoJSONLineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}
