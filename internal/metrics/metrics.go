// Package metrics exports summarization metrics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for summarize requests.
const (
	OutcomeOK         = "ok"
	OutcomeEmptyInput = "empty_input"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

// Exporter holds the summarizer collectors on a private registry.
type Exporter struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	latency   prometheus.Histogram
	sentences prometheus.Histogram
}

// NewExporter registers all collectors. A nil registry creates a new one.
func NewExporter(registry *prometheus.Registry) *Exporter {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	e := &Exporter{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textsum",
			Name:      "summarize_requests_total",
			Help:      "Summarize requests by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "textsum",
			Name:      "summarize_duration_seconds",
			Help:      "Time spent summarizing one document.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		sentences: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "textsum",
			Name:      "document_sentences",
			Help:      "Number of sentences per summarized document.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	registry.MustRegister(e.requests, e.latency, e.sentences)
	return e
}

// Observe records one summarize request.
func (e *Exporter) Observe(outcome string, elapsed time.Duration, sentences int) {
	e.requests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	e.latency.Observe(elapsed.Seconds())
	e.sentences.Observe(float64(sentences))
}

// Handler serves the registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (e *Exporter) Registry() *prometheus.Registry { return e.registry }
