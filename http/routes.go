package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the simulation endpoints. Simulation routes are rate
// limited per client IP; health and metrics are not.
func NewRouter(
	handler *SimulationHandler,
	limiter *RateLimiter,
	logger *zap.Logger,
) http.Handler {

	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	simulationRoutes := map[string]http.HandlerFunc{
		"/simulation/calculate":  handler.Calculate,
		"/simulation/scenarios":  handler.Scenarios,
		"/simulation/projection": handler.Projection,
		"/simulation/analysis":   handler.Analysis,
	}
	for route, fn := range simulationRoutes {
		mux.Handle(route, AccessLogMiddleware(logger, route,
			RateLimitMiddleware(limiter, fn),
		))
	}

	mux.Handle("/healthz", http.HandlerFunc(Health))
	mux.Handle("/metrics", promhttp.Handler())

	return RequestIDMiddleware(mux)
}
