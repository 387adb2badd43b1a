package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for catalog fetches.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	ErrorsTotal     *prometheus.CounterVec
	RecordsTotal    prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artgrid_catalog_requests_total",
			Help: "Total artwork page requests by outcome.",
		},
		[]string{"status"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "artgrid_catalog_request_duration_seconds",
			Help:    "Artwork page request latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artgrid_catalog_errors_total",
			Help: "Failed artwork page requests by error class.",
		},
		[]string{"class"},
	)
	records := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "artgrid_catalog_records_total",
			Help: "Total normalized records received.",
		},
	)

	registry.MustRegister(requests, duration, errorsTotal, records)

	return &Metrics{
		Registry:        registry,
		RequestsTotal:   requests,
		RequestDuration: duration,
		ErrorsTotal:     errorsTotal,
		RecordsTotal:    records,
	}
}

func (m *Metrics) IncRequest(status string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.Observe(d.Seconds())
}

func (m *Metrics) IncError(class ErrorClass) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(string(class)).Inc()
}

func (m *Metrics) AddRecords(n int) {
	if m == nil {
		return
	}
	m.RecordsTotal.Add(float64(n))
}
