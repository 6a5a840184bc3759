package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/heuristic"
	"github.com/katalvlaran/amphipod/movegen"
	"github.com/katalvlaran/amphipod/pqueue"
	"github.com/katalvlaran/amphipod/types"
)

// Engine solves burrow configurations for one codec. It is immutable after
// New and safe to share between goroutines.
type Engine struct {
	codec   burrow.Codec
	options Options
}

// New builds an Engine for codec with the given options.
func New(codec burrow.Codec, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{codec: codec, options: cfg}
}

// Codec returns the codec the engine was built for.
func (e *Engine) Codec() burrow.Codec { return e.codec }

// Solve runs A* from start and returns the minimum cost to the goal.
//
// Returns ErrUnsolvable when no sequence of legal moves reaches the goal,
// ErrBudgetExceeded when MaxExpansions is hit, and a wrapped
// movegen.ErrInvariant or ErrNegativeEstimate when generation and
// application disagree (a bug, never bad input).
func (e *Engine) Solve(start burrow.Configuration) (*Result, error) {
	if e.codec == nil {
		return nil, ErrNilCodec
	}

	began := time.Now()
	r := &runner{
		codec:   e.codec,
		options: e.options,
		visited: make(map[burrow.Configuration]Visit, e.options.VisitedHint),
		pq:      pqueue.New(lessEntry, e.options.VisitedHint/4),
		buf:     make([]movegen.Move, 0, 32),
	}
	e.options.Logger.Info("solve started", "start", start, "depth", e.codec.Depth())

	res, err := r.run(start)

	elapsed := time.Since(began)
	outcome := types.OutcomeSolved
	switch {
	case err == nil:
	case errors.Is(err, ErrUnsolvable):
		outcome = types.OutcomeUnsolvable
	case errors.Is(err, ErrBudgetExceeded):
		outcome = types.OutcomeBudget
	default:
		outcome = types.OutcomeError
	}
	e.options.Metrics.RecordSolve(outcome, elapsed.Seconds(), r.expanded, r.generated)
	e.options.Metrics.RecordFrontierPeak(r.peak)

	if err != nil {
		e.options.Logger.Warn("solve failed",
			"outcome", outcome, "error", err, "expanded", r.expanded, "elapsed", elapsed)
		return nil, err
	}
	e.options.Logger.Info("solve finished",
		"cost", res.Cost, "expanded", res.Expanded, "generated", res.Generated,
		"stale", res.Stale, "elapsed", elapsed)

	return res, nil
}

// entry is one frontier item.
type entry struct {
	config   burrow.Configuration
	cost     uint64 // g: real cost from start
	estimate uint64 // f: g + admissible remaining bound
	move     movegen.Move
	hasMove  bool
}

// lessEntry orders by f ascending, then g descending.
func lessEntry(a, b entry) bool {
	if a.estimate != b.estimate {
		return a.estimate < b.estimate
	}

	return a.cost > b.cost
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	codec   burrow.Codec
	options Options
	visited map[burrow.Configuration]Visit
	pq      *pqueue.Queue[entry]
	buf     []movegen.Move

	expanded  int
	generated int
	stale     int
	peak      int
}

func (r *runner) run(start burrow.Configuration) (*Result, error) {
	var h uint64
	if r.options.Heuristic {
		h = heuristic.Estimate(r.codec, start)
	}
	r.pq.Push(entry{config: start, cost: 0, estimate: h})
	r.peak = 1

	for {
		cur, ok := r.pq.Pop()
		if !ok {
			return nil, ErrUnsolvable
		}

		// Stale duplicate of an already finalised configuration.
		if _, done := r.visited[cur.config]; done {
			r.stale++
			continue
		}
		r.visited[cur.config] = Visit{Cost: cur.cost, Move: cur.move, HasMove: cur.hasMove}
		r.expanded++

		if r.options.Trace {
			r.options.Logger.Debug("expand",
				"cost", cur.cost, "estimate", cur.estimate, "move", traceMove(cur),
				"burrow", "\n"+r.codec.Format(cur.config))
		}

		if r.codec.IsGoal(cur.config) {
			return r.result(start, cur), nil
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, ErrBudgetExceeded
		}

		if err := r.expand(cur); err != nil {
			return nil, err
		}
		if n := r.pq.Len(); n > r.peak {
			r.peak = n
		}
	}
}

// expand pushes every successor of cur that is not finalised yet.
func (r *runner) expand(cur entry) error {
	r.buf = movegen.Generate(r.codec, cur.config, r.buf[:0])
	h := int64(cur.estimate - cur.cost)

	for _, m := range r.buf {
		next, stepCost, err := movegen.Apply(r.codec, cur.config, m)
		if err != nil {
			return err
		}
		if _, done := r.visited[next]; done {
			continue
		}

		g := cur.cost + stepCost
		f := g
		if r.options.Heuristic {
			nh := h + heuristic.Delta(m)
			if nh < 0 {
				return fmt.Errorf("%w: %v from %v gives %d", ErrNegativeEstimate, m, cur.config, nh)
			}
			f += uint64(nh)
		}

		r.pq.Push(entry{config: next, cost: g, estimate: f, move: m, hasMove: true})
		r.generated++
	}

	return nil
}

func (r *runner) result(start burrow.Configuration, goal entry) *Result {
	res := &Result{
		Start:        start,
		Goal:         goal.config,
		Cost:         goal.cost,
		Expanded:     r.expanded,
		Generated:    r.generated,
		Stale:        r.stale,
		FrontierPeak: r.peak,
	}
	if r.options.ReturnPath {
		res.Visited = Visited{m: r.visited}
	}

	return res
}

func traceMove(e entry) string {
	if !e.hasMove {
		return "start"
	}

	return e.move.String()
}
