package search

import (
	"errors"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/internal/logger"
	"github.com/katalvlaran/amphipod/internal/metrics"
	"github.com/katalvlaran/amphipod/movegen"
	"github.com/katalvlaran/amphipod/types"
)

// Sentinel errors returned by the search engine and the path reconstructor.
var (
	// ErrNilCodec indicates an Engine built with a nil codec.
	ErrNilCodec = errors.New("search: codec is nil")

	// ErrUnsolvable indicates that the frontier emptied without reaching the goal.
	ErrUnsolvable = errors.New("search: configuration cannot reach the goal")

	// ErrBudgetExceeded indicates that the expansion cap was reached first.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")

	// ErrNegativeEstimate indicates an incremental heuristic update below zero,
	// which means the estimator and the move generator disagree.
	ErrNegativeEstimate = errors.New("search: heuristic estimate went negative")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrBadVisitedHint indicates a negative visited-map size hint.
	ErrBadVisitedHint = errors.New("search: VisitedHint must be non-negative")

	// ErrNotVisited indicates a Reconstruct target missing from the visited map.
	ErrNotVisited = errors.New("search: configuration was not finalised")

	// ErrBrokenTrail indicates a recorded move that does not lead back to a
	// finalised predecessor with a matching cost.
	ErrBrokenTrail = errors.New("search: recorded moves do not form a path")
)

// Options configures an Engine.
//
// ReturnPath    – keep the visited map in Result.Visited.
// Trace         – log every expansion at debug level, with the rendered burrow.
// MaxExpansions – stop after this many expansions; 0 means unlimited.
// VisitedHint   – initial capacity of the visited map and frontier.
// Heuristic     – use the admissible estimate (true) or plain uniform cost.
type Options struct {
	ReturnPath    bool
	Trace         bool
	MaxExpansions int
	VisitedHint   int
	Heuristic     bool
	Logger        types.Logger
	Metrics       types.MetricsCollector
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the defaults: heuristic on, no trace, no cap,
// a 64k visited hint, no-op logger and metrics.
func DefaultOptions() Options {
	return Options{
		Heuristic:   true,
		VisitedHint: 1 << 16,
		Logger:      logger.NewNop(),
		Metrics:     metrics.NewNop(),
	}
}

// WithReturnPath keeps the visited map so the caller can Reconstruct the
// optimal sequence of configurations.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTrace logs each expanded configuration at debug level.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithMaxExpansions caps the number of expansions; 0 disables the cap.
// Panics on a negative value.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithVisitedHint pre-sizes the visited map. Panics on a negative value.
func WithVisitedHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadVisitedHint.Error())
		}
		o.VisitedHint = n
	}
}

// WithoutHeuristic turns the engine into a uniform-cost (Dijkstra) search.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = false
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l types.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics collector; nil keeps the no-op collector.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// Visit is what the engine remembers about a finalised configuration:
// its minimal real cost and the move that reached it.
type Visit struct {
	Cost    uint64
	Move    movegen.Move
	HasMove bool // false only for the start configuration
}

// Visited is a read-only view of the finalised configurations of one solve.
type Visited struct {
	m map[burrow.Configuration]Visit
}

// Lookup returns the Visit recorded for c.
func (v Visited) Lookup(c burrow.Configuration) (Visit, bool) {
	rec, ok := v.m[c]
	return rec, ok
}

// Len returns the number of finalised configurations.
func (v Visited) Len() int { return len(v.m) }

// Result is the outcome of a successful Solve.
type Result struct {
	Start burrow.Configuration
	Goal  burrow.Configuration
	// Cost is the minimum total movement cost from Start to Goal.
	Cost uint64

	Expanded     int // configurations finalised
	Generated    int // successors pushed onto the frontier
	Stale        int // frontier entries skipped because already finalised
	FrontierPeak int

	// Visited is populated only with WithReturnPath.
	Visited Visited
}

// Step is one configuration of a reconstructed path.
type Step struct {
	Config burrow.Configuration
	// Cost is the accumulated real cost when Config is reached.
	Cost    uint64
	Move    movegen.Move
	HasMove bool
}
