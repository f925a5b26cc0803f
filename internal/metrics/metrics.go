package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	UpstreamOK          = "ok"
	UpstreamParseError  = "parse_error"
	UpstreamError       = "upstream_error"
	UpstreamBreakerOpen = "breaker_open"
	UpstreamThrottled   = "throttled"
)

// Generation run results.
const (
	GenerationOK    = "ok"
	GenerationEmpty = "empty"
	GenerationError = "error"
)

// Metrics holds the Prometheus collectors of the service on a private
// registry. All methods are safe on a nil receiver, which disables
// recording.
type Metrics struct {
	registry *prometheus.Registry

	upstreamCalls    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	generationRuns   *prometheus.CounterVec
	postsGenerated   prometheus.Counter
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postcraft_upstream_calls_total",
				Help: "Calls to the generative-language API by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "postcraft_upstream_call_duration_seconds",
				Help:    "Duration of calls to the generative-language API",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		),
		generationRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postcraft_generation_runs_total",
				Help: "Generate-and-attach runs by result",
			},
			[]string{"result"},
		),
		postsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "postcraft_posts_generated_total",
				Help: "Posts persisted by generation runs",
			},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.upstreamCalls,
		m.upstreamDuration,
		m.generationRuns,
		m.postsGenerated,
	)
	return m
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamCalls.WithLabelValues(outcome).Inc()
	m.upstreamDuration.Observe(elapsed.Seconds())
}

// ObserveGeneration records one orchestrator run and the number of posts it
// stored.
func (m *Metrics) ObserveGeneration(result string, posts int) {
	if m == nil {
		return
	}
	m.generationRuns.WithLabelValues(result).Inc()
	if posts > 0 {
		m.postsGenerated.Add(float64(posts))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
