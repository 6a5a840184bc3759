package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/amphipod/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
// Collectors are created and registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	expanded      prometheus.Counter
	generated     prometheus.Counter
	frontierPeak  prometheus.Gauge
	cacheLookups  *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace ("amphipod" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "amphipod"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solves = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "solves_total",
			Help:      "Total finished solves by outcome.",
		}, []string{"outcome"})

		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve in seconds by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4.4min
		}, []string{"outcome"})

		p.expanded = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "expanded_total",
			Help:      "Total configurations finalised and expanded.",
		})

		p.generated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "generated_total",
			Help:      "Total successor configurations pushed onto a frontier.",
		})

		p.frontierPeak = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "frontier_peak",
			Help:      "Largest frontier size of the most recent solve.",
		})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "cache_lookups_total",
			Help:      "Result cache probes by result (hit, miss).",
		}, []string{"result"})

		p.reg.MustRegister(
			p.solves,
			p.solveDuration,
			p.expanded,
			p.generated,
			p.frontierPeak,
			p.cacheLookups,
		)
	})
}

// RecordSolve records one finished solve.
func (p *PrometheusCollector) RecordSolve(outcome string, seconds float64, expanded, generated int) {
	p.ensureRegistered()
	p.solves.WithLabelValues(outcome).Inc()
	p.solveDuration.WithLabelValues(outcome).Observe(seconds)
	p.expanded.Add(float64(expanded))
	p.generated.Add(float64(generated))
}

// RecordFrontierPeak records the largest frontier of a solve.
func (p *PrometheusCollector) RecordFrontierPeak(size int) {
	p.ensureRegistered()
	p.frontierPeak.Set(float64(size))
}

// RecordCacheLookup records a result cache probe.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}
