package openrouteservice

// geocodeResponse represents the ORS geocode/search GeoJSON response.
type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

// geocodeFeature is a single geocoding match.
type geocodeFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
	Properties geocodeProperties `json:"properties"`
}

// geocodeProperties carries the Pelias place attributes we care about.
type geocodeProperties struct {
	Label        string `json:"label,omitempty"`
	Country      string `json:"country,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	RegionAbbrev string `json:"region_a,omitempty"`
	Region       string `json:"region,omitempty"`
	State        string `json:"state,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
}
