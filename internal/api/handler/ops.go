// Package handler provides HTTP handlers for the FuelRoute API.
package handler

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fuelroute/fuelroute/internal/api/models"
	"github.com/fuelroute/fuelroute/internal/api/response"
	"github.com/fuelroute/fuelroute/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	db        *pgxpool.Pool
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler. The database pool and provider
// registry are optional; checks for absent dependencies are skipped.
func NewOpsHandler(version, buildTime string, db *pgxpool.Pool, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		db:        db,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// is ready when the database answers a ping.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			health.Status = models.HealthStatusFail
			health.Details = map[string]interface{}{"postgres": err.Error()}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	status := models.SystemStatus{
		Status:     models.HealthStatusOK,
		Time:       now,
		Subsystems: []models.SubsystemStatus{},
		Providers:  []models.ProviderStatus{},
	}

	if h.db != nil {
		postgres := models.SubsystemStatus{Name: "postgres", Status: models.HealthStatusOK}
		if err := h.db.Ping(r.Context()); err != nil {
			detail := err.Error()
			postgres.Status = models.HealthStatusFail
			postgres.Detail = &detail
			status.Status = models.HealthStatusFail
		}
		status.Subsystems = append(status.Subsystems, postgres)
	}

	if h.registry != nil {
		for _, health := range h.registry.GetAllHealth() {
			status.Providers = append(status.Providers, providerStatus(health))
			if !health.IsHealthy() && status.Status == models.HealthStatusOK {
				status.Status = models.HealthStatusDegraded
			}
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}

func providerStatus(health *resilience.ProviderHealth) models.ProviderStatus {
	ps := models.ProviderStatus{
		Provider:     health.Name,
		Status:       models.HealthStatusOK,
		CircuitState: health.CircuitState.String(),
	}

	switch {
	case health.IsUnhealthy():
		ps.Status = models.HealthStatusFail
	case health.IsDegraded():
		ps.Status = models.HealthStatusDegraded
	}

	if health.LastSuccessAt != nil {
		ts := models.Timestamp(*health.LastSuccessAt)
		ps.LastSuccessAt = &ts
	}
	if health.LastFailureAt != nil {
		ts := models.Timestamp(*health.LastFailureAt)
		ps.LastFailureAt = &ts
	}
	if health.LastError != "" {
		msg := health.LastError
		ps.Message = &msg
	}

	return ps
}
