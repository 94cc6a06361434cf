package handler

import (
	"net/http"
	"strconv"

	"github.com/fuelroute/fuelroute/internal/api/models"
	"github.com/fuelroute/fuelroute/internal/api/response"
	"github.com/fuelroute/fuelroute/internal/fuel"
)

const (
	defaultStationLimit = 50
	maxStationLimit     = 200
)

// StationHandler handles fuel station endpoints.
type StationHandler struct {
	repo fuel.Repository
}

// NewStationHandler creates a new StationHandler.
func NewStationHandler(repo fuel.Repository) *StationHandler {
	return &StationHandler{repo: repo}
}

// ListStations handles GET /v1/stations - paginated station listing.
func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	limit := defaultStationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, r, "invalid query parameters", []models.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			})
			return
		}
		limit = parsed
	}
	if limit > maxStationLimit {
		limit = maxStationLimit
	}

	var cursor int64
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			response.BadRequest(w, r, "invalid query parameters", []models.FieldError{
				{Field: "cursor", Message: "must be a non-negative integer"},
			})
			return
		}
		cursor = parsed
	}

	result, err := h.repo.List(r.Context(), fuel.ListOptions{Limit: limit, Cursor: cursor})
	if err != nil {
		response.InternalError(w, r, "could not list stations")
		return
	}

	items := make([]models.Station, 0, len(result.Items))
	for _, s := range result.Items {
		items = append(items, models.Station{
			ID:             s.ID,
			Name:           s.Name,
			Address:        s.Address,
			City:           s.City,
			State:          s.State,
			PricePerGallon: s.PricePerGallon,
		})
	}

	response.JSON(w, r, http.StatusOK, models.PagedStations{
		Items: items,
		Meta: models.PagedResponseMeta{
			Limit:      limit,
			NextCursor: result.NextCursor,
		},
	})
}
