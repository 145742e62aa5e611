package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/siteconfig/pkg/validator"
)

// Record kinds used as the record label.
const (
	RecordSite   = "site"
	RecordClient = "client"
)

// Metrics records validation outcomes on its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the validation collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "siteconfig",
			Name:      "validations_total",
			Help:      "Whole-record validations by record kind and outcome.",
		}, []string{"record", "outcome"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "siteconfig",
			Name:      "validation_warnings_total",
			Help:      "Warnings produced by whole-record validations.",
		}, []string{"record"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "siteconfig",
			Name:      "validation_duration_seconds",
			Help:      "Time spent validating one record.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		}, []string{"record"}),
	}
	m.registry.MustRegister(
		m.validations,
		m.warnings,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one validation pass. A nil Metrics is a no-op.
func (m *Metrics) Observe(record string, res validator.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !res.Valid {
		outcome = "invalid"
	}
	m.validations.WithLabelValues(record, outcome).Inc()
	m.warnings.WithLabelValues(record).Add(float64(len(res.Warnings)))
	m.duration.WithLabelValues(record).Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
