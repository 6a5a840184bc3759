// Package search finds the minimum total cost that solves a burrow
// configuration, using best-first (A*) search over the configuration graph.
//
// Overview:
//
//   - The frontier is a pqueue.Queue ordered by estimated total cost
//     f = g + h, where g is the real cost so far and h comes from package
//     heuristic. Equal f values pop the entry with the larger g first, which
//     favours configurations closer to the goal; this affects traversal order
//     only, never the returned cost.
//   - Each configuration is finalised exactly once, when it is popped for the
//     first time ("lazy decrease-key"): stale duplicates left in the frontier
//     are skipped when they surface.
//   - Successors come from movegen.Generate and are applied with
//     movegen.Apply; h is updated incrementally with heuristic.Delta.
//   - The search stops as soon as the goal configuration is popped.
//
// State machine of a configuration:
//
//	Unexpanded (in frontier) ──pop──▶ Finalised (in visited) ──goal?──▶ Goal-Finalised
//
// Options:
//
//   - WithReturnPath():        keep the visited map in the Result for Reconstruct.
//   - WithTrace():             log every expansion (rendered) at debug level.
//   - WithMaxExpansions(n):    stop with ErrBudgetExceeded after n expansions.
//   - WithVisitedHint(n):      pre-size the visited map and frontier.
//   - WithoutHeuristic():      plain uniform-cost search (h = 0).
//   - WithLogger / WithMetrics: observability sinks (no-ops by default).
//
// Errors (sentinel):
//
//   - ErrNilCodec:        Solve called on an Engine built without a codec.
//   - ErrUnsolvable:      the frontier emptied before the goal was reached.
//   - ErrBudgetExceeded:  WithMaxExpansions cap reached.
//   - ErrNegativeEstimate: an incremental estimate went below zero.
//   - movegen.ErrInvariant (wrapped): a generated move could not be applied.
//   - ErrNotVisited, ErrBrokenTrail: Reconstruct could not walk back.
//
// Concurrency: an Engine is immutable and may be shared; every Solve call
// allocates its own frontier and visited map and runs on the caller's
// goroutine without suspension points.
//
// Complexity: O(S log S) time and O(S) memory for S reachable configurations,
// in practice far fewer thanks to the heuristic.
package search
