package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	ActiveSessions    prometheus.Gauge
	TurnsProcessed    *prometheus.CounterVec
	ProviderErrors    *prometheus.CounterVec
	CompletionLatency prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of chat sessions active within the inactivity window.",
		}),
		TurnsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_processed_total",
			Help:      "Processed conversation turns by topic and outcome.",
		}, []string{"topic", "outcome"}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Completion provider errors by call site.",
		}, []string{"call"}),
		CompletionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "primary_completion_latency_ms",
			Help:      "Latency of the primary completion call in milliseconds.",
			Buckets:   []float64{100, 250, 500, 1000, 2000, 4000, 8000, 12000},
		}),
	}
}

// ObserveTurn records one processed turn. Nil-safe so wiring metrics stays
// optional in tests.
func (m *Metrics) ObserveTurn(topic, outcome string) {
	if m == nil {
		return
	}
	m.TurnsProcessed.WithLabelValues(topic, outcome).Inc()
}

func (m *Metrics) ObserveProviderError(call string) {
	if m == nil {
		return
	}
	m.ProviderErrors.WithLabelValues(call).Inc()
}

func (m *Metrics) ObserveCompletionLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.CompletionLatency.Observe(float64(d.Milliseconds()))
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
