package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SimulationsComputed counts engine runs by scenario and viability.
var SimulationsComputed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "simulator_simulations_computed_total",
		Help: "Total number of simulations computed by the engine",
	},
	[]string{"scenario", "viable"},
)

// RiskFindings counts emitted risk findings by severity.
var RiskFindings = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "simulator_risk_findings_total",
		Help: "Total number of risk findings emitted by the classifier",
	},
	[]string{"severity"},
)

// Cache lookups
var (
	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulator_cache_hits_total",
			Help: "Simulations served from the cache",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulator_cache_misses_total",
			Help: "Simulations not found in the cache",
		},
	)
)

// HTTPRequestDuration records handler latency by route and status code.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "simulator_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route", "code"},
)

// RateLimited counts requests rejected by the rate limiter.
var RateLimited = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "simulator_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	},
)

func init() {
	prometheus.MustRegister(SimulationsComputed, RiskFindings)
	prometheus.MustRegister(CacheHits, CacheMisses)
	prometheus.MustRegister(HTTPRequestDuration, RateLimited)
}
