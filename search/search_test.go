// Package search_test validates the A* engine on known puzzles, its error
// paths, its observability hooks and the path reconstructor.
package search_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/internal/logging"
	"github.com/katalvlaran/amphipod/movegen"
	"github.com/katalvlaran/amphipod/parse"
	"github.com/katalvlaran/amphipod/search"
	"github.com/katalvlaran/amphipod/types"
)

const (
	sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

	mouthSwap = `#############
#...........#
###B#A#C#D###
  #A#B#C#D#
  #########`

	deadlock = `#############
#...D...A...#
###.#B#C#.###
  #########`
)

func mustEncode(t testing.TB, diagram string, opts ...parse.Option) (*burrow.Packed, burrow.Configuration) {
	t.Helper()
	g, err := parse.ParseString(diagram, opts...)
	require.NoError(t, err)
	codec := burrow.MustCodec(g.Depth())
	c, err := codec.Encode(g)
	require.NoError(t, err)

	return codec, c
}

// ------------------------------------------------------------------------
// 1. Known costs.
// ------------------------------------------------------------------------

func TestSolve_AlreadySolved(t *testing.T) {
	for d := 1; d <= burrow.MaxDepth; d++ {
		codec := burrow.MustCodec(d)
		res, err := search.New(codec).Solve(codec.Goal())
		require.NoError(t, err)
		require.Zero(t, res.Cost)
		require.Equal(t, 1, res.Expanded)
		require.Equal(t, codec.Goal(), res.Goal)
	}
}

func TestSolve_MouthSwap(t *testing.T) {
	codec, c := mustEncode(t, mouthSwap)
	res, err := search.New(codec).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(46), res.Cost)
	require.Equal(t, c, res.Start)
}

func TestSolve_Sample(t *testing.T) {
	codec, c := mustEncode(t, sample)
	res, err := search.New(codec).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(12521), res.Cost)
	require.Positive(t, res.Generated)
	require.Positive(t, res.FrontierPeak)
	require.Zero(t, res.Visited.Len(), "visited map is kept only with WithReturnPath")
}

func TestSolve_SampleUnfolded(t *testing.T) {
	if testing.Short() {
		t.Skip("four-deep search skipped in short mode")
	}
	codec, c := mustEncode(t, sample, parse.WithUnfold())
	require.Equal(t, 4, codec.Depth())

	res, err := search.New(codec).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(44169), res.Cost)
}

func TestSolve_Idempotent(t *testing.T) {
	codec, c := mustEncode(t, sample)
	eng := search.New(codec)
	first, err := eng.Solve(c)
	require.NoError(t, err)
	second, err := eng.Solve(c)
	require.NoError(t, err)
	require.Equal(t, first.Cost, second.Cost)
	require.Equal(t, first.Expanded, second.Expanded)
	require.Equal(t, first.Generated, second.Generated)
}

func TestSolve_ConcurrentEngine(t *testing.T) {
	codec, c := mustEncode(t, sample)
	eng := search.New(codec)

	var wg sync.WaitGroup
	costs := make([]uint64, 4)
	for i := range costs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := eng.Solve(c)
			if err == nil {
				costs[i] = res.Cost
			}
		}(i)
	}
	wg.Wait()
	for _, cost := range costs {
		require.Equal(t, uint64(12521), cost)
	}
}

// ------------------------------------------------------------------------
// 2. A* agrees with uniform-cost search.
// ------------------------------------------------------------------------

// permutations returns every ordering of the four unit kinds.
func permutations() [][burrow.NumBays]burrow.Unit {
	var out [][burrow.NumBays]burrow.Unit
	var rec func(cur []burrow.Unit, used [burrow.NumBays]bool)
	rec = func(cur []burrow.Unit, used [burrow.NumBays]bool) {
		if len(cur) == burrow.NumBays {
			var p [burrow.NumBays]burrow.Unit
			copy(p[:], cur)
			out = append(out, p)
			return
		}
		for i, u := range burrow.Units {
			if used[i] {
				continue
			}
			used[i] = true
			rec(append(cur, u), used)
			used[i] = false
		}
	}
	rec(nil, [burrow.NumBays]bool{})

	return out
}

func TestSolve_MatchesUniformCost(t *testing.T) {
	codec := burrow.MustCodec(1)
	astar := search.New(codec)
	ucs := search.New(codec, search.WithoutHeuristic())

	for _, perm := range permutations() {
		g := burrow.NewGrid(1)
		for b, u := range perm {
			g.Bays[b][0] = u
		}
		c, err := codec.Encode(g)
		require.NoError(t, err)

		want, wantErr := ucs.Solve(c)
		got, gotErr := astar.Solve(c)
		if wantErr != nil {
			require.ErrorIs(t, gotErr, search.ErrUnsolvable)
			require.ErrorIs(t, wantErr, search.ErrUnsolvable)
			continue
		}
		require.NoError(t, gotErr)
		require.Equal(t, want.Cost, got.Cost, "permutation %v", perm)
	}

	codec2, c := mustEncode(t, sample)
	want, err := search.New(codec2, search.WithoutHeuristic()).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(12521), want.Cost)
}

// ------------------------------------------------------------------------
// 3. Errors and options.
// ------------------------------------------------------------------------

func TestSolve_Unsolvable(t *testing.T) {
	codec, c := mustEncode(t, deadlock)
	_, err := search.New(codec).Solve(c)
	require.ErrorIs(t, err, search.ErrUnsolvable)
}

func TestSolve_Budget(t *testing.T) {
	codec, c := mustEncode(t, sample)
	_, err := search.New(codec, search.WithMaxExpansions(5)).Solve(c)
	require.ErrorIs(t, err, search.ErrBudgetExceeded)

	// A budget of zero means unlimited.
	res, err := search.New(codec, search.WithMaxExpansions(0)).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(12521), res.Cost)
}

func TestSolve_NilCodec(t *testing.T) {
	_, err := search.New(nil).Solve(0)
	require.ErrorIs(t, err, search.ErrNilCodec)
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, search.ErrBadMaxExpansions.Error(), func() {
		search.New(burrow.MustCodec(2), search.WithMaxExpansions(-1))
	})
	require.PanicsWithValue(t, search.ErrBadVisitedHint.Error(), func() {
		search.New(burrow.MustCodec(2), search.WithVisitedHint(-1))
	})
	// A zero hint is legal.
	codec := burrow.MustCodec(2)
	res, err := search.New(codec, search.WithVisitedHint(0)).Solve(codec.Goal())
	require.NoError(t, err)
	require.Zero(t, res.Cost)
}

// recorder is a MetricsCollector capturing what the engine reports.
type recorder struct {
	mu       sync.Mutex
	outcomes []string
	peaks    []int
	expanded int
}

func (r *recorder) RecordSolve(outcome string, _ float64, expanded, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
	r.expanded += expanded
}

func (r *recorder) RecordFrontierPeak(size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peaks = append(r.peaks, size)
}

func (r *recorder) RecordCacheLookup(bool) {}

func TestSolve_ReportsMetricsAndTrace(t *testing.T) {
	rec := &recorder{}
	var buf bytes.Buffer
	log := logging.New(&buf, "text", "debug")

	codec, c := mustEncode(t, mouthSwap)
	eng := search.New(codec, search.WithMetrics(rec), search.WithLogger(log), search.WithTrace())
	_, err := eng.Solve(c)
	require.NoError(t, err)

	_, dead := mustEncode(t, deadlock)
	_, err = search.New(burrow.MustCodec(1), search.WithMetrics(rec)).Solve(dead)
	require.True(t, errors.Is(err, search.ErrUnsolvable))

	require.Equal(t, []string{types.OutcomeSolved, types.OutcomeUnsolvable}, rec.outcomes)
	require.Len(t, rec.peaks, 2)
	require.Positive(t, rec.expanded)

	out := buf.String()
	require.Contains(t, out, "solve started")
	require.Contains(t, out, "expand")
	require.Contains(t, out, "solve finished")
	require.Contains(t, out, "###B#A#C#D###")

	// Nil sinks keep the no-op defaults.
	res, err := search.New(codec, search.WithLogger(nil), search.WithMetrics(nil)).Solve(c)
	require.NoError(t, err)
	require.Equal(t, uint64(46), res.Cost)
}

// ------------------------------------------------------------------------
// 4. Path reconstruction.
// ------------------------------------------------------------------------

func TestReconstruct(t *testing.T) {
	for _, diagram := range []string{mouthSwap, sample} {
		codec, c := mustEncode(t, diagram)
		res, err := search.New(codec, search.WithReturnPath()).Solve(c)
		require.NoError(t, err)
		require.Positive(t, res.Visited.Len())

		path, err := search.Reconstruct(codec, res.Visited, res.Goal)
		require.NoError(t, err)
		require.Equal(t, c, path[0].Config)
		require.False(t, path[0].HasMove)
		require.Zero(t, path[0].Cost)
		require.Equal(t, res.Goal, path[len(path)-1].Config)
		require.Equal(t, res.Cost, path[len(path)-1].Cost)

		// Every step is a legal move whose cost accumulates to the total.
		var sum uint64
		for i, m := range path.Moves() {
			require.Contains(t, movegen.Legal(codec, path[i].Config), m)
			next, cost, err := movegen.Apply(codec, path[i].Config, m)
			require.NoError(t, err)
			require.Equal(t, path[i+1].Config, next)
			sum += cost
			require.Equal(t, sum, path[i+1].Cost)
		}
		require.Equal(t, res.Cost, sum)
	}
}

func TestReconstruct_Start(t *testing.T) {
	codec := burrow.MustCodec(2)
	res, err := search.New(codec, search.WithReturnPath()).Solve(codec.Goal())
	require.NoError(t, err)

	path, err := search.Reconstruct(codec, res.Visited, res.Goal)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Empty(t, path.Moves())
	require.True(t, strings.HasPrefix(path.Render(codec), "start (cost 0)\n#############"))
}

func TestReconstruct_Errors(t *testing.T) {
	codec, c := mustEncode(t, mouthSwap)
	res, err := search.New(codec).Solve(c)
	require.NoError(t, err)

	_, err = search.Reconstruct(codec, res.Visited, res.Goal)
	require.ErrorIs(t, err, search.ErrNotVisited)

	_, err = search.Reconstruct(nil, res.Visited, res.Goal)
	require.ErrorIs(t, err, search.ErrNilCodec)
}

func TestPath_Render(t *testing.T) {
	codec, c := mustEncode(t, mouthSwap)
	res, err := search.New(codec, search.WithReturnPath()).Solve(c)
	require.NoError(t, err)
	path, err := search.Reconstruct(codec, res.Visited, res.Goal)
	require.NoError(t, err)

	out := path.Render(codec)
	require.Equal(t, len(path), strings.Count(out, "#############"))
	require.Contains(t, out, "(cost 46)")
	require.True(t, strings.HasSuffix(out, codec.Format(codec.Goal())))
}
