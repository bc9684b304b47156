// Package metrics defines the Prometheus collectors exported by tipcalc.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tipcalc/internal/calculator"
)

// Evaluation outcomes.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	evaluations   *prometheus.CounterVec
	invalidFields *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipcalc",
			Name:      "evaluations_total",
			Help:      "Form evaluations by adapter and outcome.",
		}, []string{"source", "outcome"}),
		invalidFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipcalc",
			Name:      "invalid_fields_total",
			Help:      "Fields that failed validation.",
		}, []string{"field"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tipcalc",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		m.evaluations,
		m.invalidFields,
		m.rpcDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveEvaluation records one engine evaluation made on behalf of source
// (e.g., "rpc", "web").
func (m *Metrics) ObserveEvaluation(source string, ev calculator.Evaluation) {
	if ev.Valid() {
		m.evaluations.WithLabelValues(source, OutcomeValid).Inc()
		return
	}
	m.evaluations.WithLabelValues(source, OutcomeInvalid).Inc()
	for _, f := range ev.Errors.Fields() {
		m.invalidFields.WithLabelValues(string(f)).Inc()
	}
}

// ObserveRPC records the duration of one RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
