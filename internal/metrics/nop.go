// Package metrics provides MetricsCollector implementations: a no-op one and
// a Prometheus-backed one.
package metrics

import "github.com/katalvlaran/amphipod/types"

// NopMetrics implements a no-op metrics collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics { return &NopMetrics{} }

// RecordSolve discards the solve metric.
func (n *NopMetrics) RecordSolve(_ /* outcome */ string, _ /* seconds */ float64, _ /* expanded */, _ /* generated */ int) {
	// No-op
}

// RecordFrontierPeak discards the frontier size.
func (n *NopMetrics) RecordFrontierPeak(_ /* size */ int) {
	// No-op
}

// RecordCacheLookup discards the cache probe.
func (n *NopMetrics) RecordCacheLookup(_ /* hit */ bool) {
	// No-op
}
