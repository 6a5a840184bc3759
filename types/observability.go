// Package types holds the small interfaces shared across packages: the
// structured Logger and the MetricsCollector the solver reports into.
package types

// Logger is a structured, leveled logger. keysAndValues alternate keys and values.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)
}

// Solve outcomes reported to MetricsCollector.RecordSolve.
const (
	OutcomeSolved     = "solved"
	OutcomeUnsolvable = "unsolvable"
	OutcomeBudget     = "budget_exceeded"
	OutcomeError      = "error"
)

// MetricsCollector receives search statistics. Implementations must be safe
// for concurrent use: a batch runner reports from several workers at once.
type MetricsCollector interface {
	// RecordSolve records one finished solve: its outcome, wall time in
	// seconds, and the number of expanded and generated configurations.
	RecordSolve(outcome string, seconds float64, expanded, generated int)

	// RecordFrontierPeak records the largest frontier size seen during a solve.
	RecordFrontierPeak(size int)

	// RecordCacheLookup records a batch result-cache probe.
	RecordCacheLookup(hit bool)
}
