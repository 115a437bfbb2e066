package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	DirectoryOps    *prometheus.CounterVec
	MatchQueries    *prometheus.CounterVec
	MatchResults    *prometheus.HistogramVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry, together
// with the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		DirectoryOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concurso_directory_operations_total",
			Help: "Directory operations by entity, operation and outcome",
		}, []string{"entity", "operation", "outcome"}),
		MatchQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "concurso_match_queries_total",
			Help: "Matching queries by direction and outcome",
		}, []string{"direction", "outcome"}),
		MatchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concurso_match_results",
			Help:    "Number of records returned by a matching query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}, []string{"direction"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concurso_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.DirectoryOps,
		m.MatchQueries,
		m.MatchResults,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveDirectoryOp(entity, operation, outcome string) {
	if m == nil {
		return
	}
	m.DirectoryOps.WithLabelValues(entity, operation, outcome).Inc()
}

func (m *Metrics) ObserveMatch(direction, outcome string, results int) {
	if m == nil {
		return
	}
	m.MatchQueries.WithLabelValues(direction, outcome).Inc()
	if outcome == "ok" {
		m.MatchResults.WithLabelValues(direction).Observe(float64(results))
	}
}

func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
}
