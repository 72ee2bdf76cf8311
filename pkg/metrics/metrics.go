// Package metrics defines the Prometheus collectors for the counting
// engine and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the counter.
type Metrics struct {
	FilesProcessedTotal prometheus.Counter
	BytesProcessedTotal prometheus.Counter
	CountDuration       prometheus.Histogram
	UniqueWords         prometheus.Gauge
}

// New creates all collectors and registers them on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all collectors and registers them on reg. Tests pass a
// private registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilesProcessedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "files_processed_total",
				Help: "Total source files successfully tokenized.",
			},
		),
		BytesProcessedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bytes_processed_total",
				Help: "Total bytes read from successfully processed files.",
			},
		),
		CountDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "count_duration_seconds",
				Help:    "Wall-clock duration of one count run in seconds.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		UniqueWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "unique_words",
				Help: "Distinct words found by the most recent count run.",
			},
		),
	}

	reg.MustRegister(
		m.FilesProcessedTotal,
		m.BytesProcessedTotal,
		m.CountDuration,
		m.UniqueWords,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
