// Package metrics counts corpus-run outcomes in a private Prometheus
// registry and writes them in text exposition format, for a node
// exporter textfile collector to pick up after batch runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Document outcomes.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Metrics holds the run's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	Documents *prometheus.CounterVec
	Chunks    *prometheus.CounterVec
	Unhandled *prometheus.CounterVec
	Duration  prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Documents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wikichunk_documents_total",
				Help: "Documents processed, by outcome",
			},
			[]string{"status"},
		),
		Chunks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wikichunk_chunks_total",
				Help: "Chunks emitted, by section title",
			},
			[]string{"section"},
		),
		Unhandled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wikichunk_unhandled_total",
				Help: "Unhandled section headers and table fields",
			},
			[]string{"kind"},
		),
		Duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wikichunk_document_duration_seconds",
				Help:    "Time to load and extract one document",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
	}
}

// RecordDocument counts one document outcome.
func (m *Metrics) RecordDocument(status string, took time.Duration) {
	m.Documents.WithLabelValues(status).Inc()
	if status != StatusSkipped {
		m.Duration.Observe(took.Seconds())
	}
}

// RecordChunk counts one emitted chunk.
func (m *Metrics) RecordChunk(section string) {
	m.Chunks.WithLabelValues(section).Inc()
}

// RecordUnhandled counts one unhandled event of the given kind.
func (m *Metrics) RecordUnhandled(kind string) {
	m.Unhandled.WithLabelValues(kind).Inc()
}

// Gatherer exposes the registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes every collector to path atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
