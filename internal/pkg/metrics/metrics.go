// Package metrics holds the prometheus collectors of the warehouse service.
// Collectors are registered on the default registry, which the HTTP adapter
// exposes on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warehouse"

var (
	routeOptimizations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "route",
		Name:      "optimizations_total",
		Help:      "Route computations by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	routeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "route",
		Name:      "optimization_duration_seconds",
		Help:      "Time spent loading facts for and ordering one pick list.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"strategy"})

	analyticsRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "layout_runs_total",
		Help:      "Daily analytics runs per layout by outcome (created, skipped, failed).",
	}, []string{"outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "code"})
)

const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

func ObserveRouteOptimization(strategy string, elapsed time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	routeOptimizations.WithLabelValues(strategy, outcome).Inc()
	routeDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

func ObserveAnalyticsRun(outcome string) {
	analyticsRuns.WithLabelValues(outcome).Inc()
}

func ObserveHTTPRequest(method, route, code string) {
	httpRequests.WithLabelValues(method, route, code).Inc()
}
