// Package api provides the HTTP API for FuelRoute.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/fuelroute/fuelroute/internal/api/handler"
	"github.com/fuelroute/fuelroute/internal/api/middleware"
	"github.com/fuelroute/fuelroute/internal/api/response"
	"github.com/fuelroute/fuelroute/internal/fuel"
	"github.com/fuelroute/fuelroute/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	// Trips plans routes with fuel stops (required).
	Trips handler.TripPlanner

	// Stations serves the station listing (required).
	Stations fuel.Repository

	// Planner supplies the vehicle parameters echoed in plan responses
	// (optional, defaults apply when nil).
	Planner *fuel.Planner

	// DB backs the readiness check (optional).
	DB *pgxpool.Pool

	// Registry reports provider health on the status endpoint (optional).
	Registry *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "fuelroute-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	mpg := fuel.DefaultMilesPerGallon
	rangeMiles := fuel.DefaultRangeMiles
	if cfg.Planner != nil {
		mpg = cfg.Planner.MilesPerGallon()
		rangeMiles = cfg.Planner.RangeMiles()
	}

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB, cfg.Registry)
	planHandler := handler.NewPlanHandler(cfg.Trips, mpg, rangeMiles)
	stationHandler := handler.NewStationHandler(cfg.Stations)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "resource not found")
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Plan endpoint - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/routes:plan", planHandler.PlanRoute)

		// Station listing - standard rate limiting
		r.With(standardRateLimit).Get("/stations", stationHandler.ListStations)
	})

	return r
}
