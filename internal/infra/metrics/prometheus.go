// Package metrics exposes service instrumentation through Prometheus.
package metrics

import (
	"net/http"
	"time"

	"tutoria/config"
	"tutoria/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "tutoria"

// PrometheusRecorder implements service.MetricsRecorder on a private registry.
type PrometheusRecorder struct {
	registry        *prometheus.Registry
	generations     *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	gateRejections  *prometheus.CounterVec
	accountEvents   *prometheus.CounterVec
}

// Result carries the recorder to consumers and the registry to the metrics listener.
type Result struct {
	fx.Out

	Recorder service.MetricsRecorder
	Registry *prometheus.Registry
}

// New returns a Prometheus-backed recorder when metrics are enabled, otherwise a no-op one.
// The registry is always returned so the listener can be wired unconditionally.
func New(cfg *config.Config) Result {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return Result{Recorder: NewNoop(), Registry: prometheus.NewRegistry()}
	}

	recorder := NewPrometheusRecorder()

	return Result{Recorder: recorder, Registry: recorder.registry}
}

// NewPrometheusRecorder registers every collector, including Go runtime and process metrics.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	r := &PrometheusRecorder{
		registry: registry,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Generation requests by task, source and outcome.",
		}, []string{"task", "source", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the generation API.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"task"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_rejections_total",
			Help:      "Requests refused by the route gate.",
		}, []string{"reason"}),
		accountEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_events_total",
			Help:      "Account operations by event.",
		}, []string{"event"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.generations,
		r.upstreamLatency,
		r.gateRejections,
		r.accountEvents,
	)

	return r
}

// Registry returns the registry holding every collector.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *PrometheusRecorder) ObserveGeneration(task, source, outcome string) {
	r.generations.WithLabelValues(task, source, outcome).Inc()
}

func (r *PrometheusRecorder) ObserveUpstreamLatency(task string, duration time.Duration) {
	r.upstreamLatency.WithLabelValues(task).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) IncGateRejection(reason string) {
	r.gateRejections.WithLabelValues(reason).Inc()
}

func (r *PrometheusRecorder) IncAccountEvent(event string) {
	r.accountEvents.WithLabelValues(event).Inc()
}
