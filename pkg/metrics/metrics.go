// Package metrics counts weather lookups, agent runs and displayed banners
// and exposes them in the Prometheus text format.
package metrics

import (
	"net/http"
	"time"

	// Packages
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
	prometheus "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Metrics is a set of collectors with their own registry
type Metrics struct {
	registry    *prometheus.Registry
	lookups     *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	banners     *prometheus.CounterVec
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	namespace     = "aura"
	statusSuccess = "success"
	statusError   = "error"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_lookups_total",
				Help:      "Total number of weather lookups by outcome",
			},
			[]string{"outcome"}, // outcome: success|network_failure|data_failure
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "agent_runs_total",
				Help:      "Total number of agent runs",
			},
			[]string{"status"}, // status: success|error
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "agent_run_duration_seconds",
				Help:      "Agent run duration in seconds",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"status"},
		),
		banners: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "banners_total",
				Help:      "Total number of banners displayed by style",
			},
			[]string{"style"}, // style: info|success|warning|error
		),
	}
	m.registry.MustRegister(m.lookups, m.runs, m.runDuration, m.banners)
	return m
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Handler returns the HTTP handler which serves the metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the registry, for adding further collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLookup records the outcome of a weather lookup
func (m *Metrics) RecordLookup(result weatherapi.Result) {
	m.lookups.WithLabelValues(result.Outcome.String()).Inc()
}

// RecordRun records an agent run
func (m *Metrics) RecordRun(duration time.Duration, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordBanner records a displayed banner
func (m *Metrics) RecordBanner(style banner.Style) {
	m.banners.WithLabelValues(style.String()).Inc()
}
