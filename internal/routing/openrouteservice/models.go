package openrouteservice

// orsRequest represents the ORS directions API request body.
type orsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
	Geometry     bool        `json:"geometry"`
	Units        string      `json:"units"`
	Language     string      `json:"language"`
}

// orsResponse represents the ORS directions API response. Depending on
// the Accept header and deployment, ORS answers either with a GeoJSON
// FeatureCollection ("features") or a plain JSON body ("routes" with an
// encoded polyline geometry). Both shapes are accepted here.
type orsResponse struct {
	Routes   []orsRoute   `json:"routes"`
	Features []orsFeature `json:"features"`
	BBox     []float64    `json:"bbox,omitempty"`
	Metadata *metadata    `json:"metadata,omitempty"`
}

// metadata contains response metadata.
type metadata struct {
	Attribution string `json:"attribution,omitempty"`
	Service     string `json:"service,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
}

// orsRoute represents a single route in the plain JSON response shape.
type orsRoute struct {
	Summary  routeSummary `json:"summary"`
	BBox     []float64    `json:"bbox,omitempty"`
	Geometry string       `json:"geometry"`
}

// orsFeature represents a single route in the GeoJSON response shape.
type orsFeature struct {
	Geometry orsLineString `json:"geometry"`
	Properties struct {
		Summary routeSummary `json:"summary"`
	} `json:"properties"`
}

// orsLineString is a GeoJSON LineString with [lon, lat] coordinate pairs.
type orsLineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// routeSummary contains distance and duration for a route.
// Distance units follow the request's "units" parameter.
type routeSummary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// orsErrorResponse represents an error response from ORS.
type orsErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Info string `json:"info,omitempty"`
}

// ORS error codes for error mapping.
const (
	orsErrorCodeNotFound     = 2009 // Route not found
	orsErrorCodeInvalidParam = 2003 // Invalid parameter
)
