package batch_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/batch"
	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/parse"
	"github.com/katalvlaran/amphipod/search"
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

func job(t *testing.T, name, diagram string, opts ...parse.Option) batch.Job {
	t.Helper()
	g, err := parse.ParseString(diagram, opts...)
	require.NoError(t, err)

	return batch.Job{Name: name, Grid: g}
}

// counter is a concurrency-safe MetricsCollector counting cache probes.
type counter struct {
	solves, hits, misses atomic.Int64
}

func (c *counter) RecordSolve(string, float64, int, int) { c.solves.Add(1) }
func (c *counter) RecordFrontierPeak(int)                 {}
func (c *counter) RecordCacheLookup(hit bool) {
	if hit {
		c.hits.Add(1)
		return
	}
	c.misses.Add(1)
}

func TestKey(t *testing.T) {
	codec := burrow.MustCodec(2)
	require.Equal(t, batch.Key(2, codec.Goal()), batch.Key(2, codec.Goal()))
	require.NotEqual(t, batch.Key(2, codec.Goal()), batch.Key(3, codec.Goal()))
	require.NotEqual(t, batch.Key(2, codec.Goal()), batch.Key(2, codec.Goal()+1))
}

func TestRun_OrderAndCosts(t *testing.T) {
	jobs := []batch.Job{
		job(t, "sample", sample),
		job(t, "swap", mouthSwap),
		job(t, "solved", burrow.SolvedGrid(3).String()),
		job(t, "unfolded", sample, parse.WithUnfold()),
	}
	r := batch.New(batch.WithWorkers(3))
	out, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, out, len(jobs))

	want := []uint64{12521, 46, 0, 44169}
	depths := []int{2, 2, 3, 4}
	for i, o := range out {
		require.NoError(t, o.Err, o.Name)
		require.Equal(t, jobs[i].Name, o.Name)
		require.Equal(t, want[i], o.Cost, o.Name)
		require.Equal(t, depths[i], o.Depth)
		require.False(t, o.Cached)
		require.Nil(t, o.Path)
	}
	require.Equal(t, 4, r.CacheSize())
}

func TestRun_CacheHits(t *testing.T) {
	c := &counter{}
	r := batch.New(batch.WithWorkers(1), batch.WithMetrics(c))
	jobs := []batch.Job{job(t, "a", mouthSwap), job(t, "b", mouthSwap), job(t, "c", sample)}

	out, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.False(t, out[0].Cached)
	require.True(t, out[1].Cached)
	require.Equal(t, out[0].Cost, out[1].Cost)
	require.Equal(t, out[0].Expanded, out[1].Expanded)
	require.Equal(t, "b", out[1].Name)
	require.Equal(t, int64(1), c.hits.Load())
	require.Equal(t, int64(2), c.misses.Load())
	require.Equal(t, int64(2), c.solves.Load())

	// A later run is answered entirely from the cache.
	out, err = r.Run(context.Background(), jobs)
	require.NoError(t, err)
	for _, o := range out {
		require.True(t, o.Cached)
	}
	require.Equal(t, int64(2), c.solves.Load())
	require.Equal(t, 2, r.CacheSize())
}

func TestRun_JobErrors(t *testing.T) {
	bad := burrow.SolvedGrid(2)
	bad.Bays[0][0] = burrow.Bronze

	r := batch.New(batch.WithWorkers(2), batch.WithSearchOptions(search.WithMaxExpansions(3)))
	out, err := r.Run(context.Background(), []batch.Job{
		{Name: "counts", Grid: bad},
		{Name: "empty", Grid: burrow.Grid{}},
		job(t, "stuck", deadlock),
		job(t, "budget", sample),
		job(t, "solved", burrow.SolvedGrid(2).String()),
	})
	require.NoError(t, err)

	require.ErrorIs(t, out[0].Err, burrow.ErrUnitCount)
	require.Contains(t, out[0].Err.Error(), "counts")
	require.ErrorIs(t, out[1].Err, burrow.ErrBadDepth)
	require.ErrorIs(t, out[2].Err, search.ErrUnsolvable)
	require.ErrorIs(t, out[3].Err, search.ErrBudgetExceeded)
	require.NoError(t, out[4].Err)

	// Cached failures keep their cause and take the new job's name.
	again := r.Solve(job(t, "stuck-again", deadlock))
	require.True(t, again.Cached)
	require.ErrorIs(t, again.Err, search.ErrUnsolvable)
	require.Contains(t, again.Err.Error(), "stuck-again")
}

func TestRun_ReturnPath(t *testing.T) {
	r := batch.New(batch.WithSearchOptions(search.WithReturnPath()))
	o := r.Solve(job(t, "swap", mouthSwap))
	require.NoError(t, o.Err)
	require.Equal(t, uint64(46), o.Cost)
	require.Len(t, o.Path.Moves(), 4)
	require.Equal(t, o.Start, o.Path[0].Config)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := batch.New(batch.WithWorkers(2))
	jobs := []batch.Job{job(t, "a", sample), job(t, "b", mouthSwap)}
	out, err := r.Run(ctx, jobs)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 2)
	for i, o := range out {
		if o.Err != nil {
			require.ErrorIs(t, o.Err, context.Canceled)
			require.Equal(t, jobs[i].Name, o.Name)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	out, err := batch.New().Run(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestWithWorkers_Panics(t *testing.T) {
	require.PanicsWithValue(t, batch.ErrBadWorkers.Error(), func() {
		batch.New(batch.WithWorkers(0))
	})
}

func TestRunner_Codec(t *testing.T) {
	r := batch.New()
	for d := 1; d <= burrow.MaxDepth; d++ {
		require.Equal(t, d, r.Codec(d).Depth())
	}
	require.Nil(t, r.Codec(0))
	require.Nil(t, r.Codec(burrow.MaxDepth+1))
}
