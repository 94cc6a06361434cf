package models

// Station represents a fuel station in API responses.
type Station struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	PricePerGallon float64 `json:"pricePerGallon"`
}

// PagedStations is a paginated list of fuel stations.
type PagedStations struct {
	Items []Station         `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}
