package batch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/internal/logger"
	"github.com/katalvlaran/amphipod/internal/metrics"
	"github.com/katalvlaran/amphipod/search"
	"github.com/katalvlaran/amphipod/types"
)

// ErrBadWorkers indicates a worker count below one.
var ErrBadWorkers = errors.New("batch: workers must be at least 1")

// Job is one burrow instance to solve.
type Job struct {
	Name string
	Grid burrow.Grid
}

// Outcome is the result of one Job.
type Outcome struct {
	Name     string
	Depth    int
	Start    burrow.Configuration
	Cost     uint64
	Expanded int
	// Path is set when the runner was built with search.WithReturnPath.
	Path   search.Path
	Cached bool
	Err    error
}

// cached is what the result cache keeps per fingerprint.
type cached struct {
	cost     uint64
	expanded int
	path     search.Path
	err      error
}

// Options configures a Runner.
type Options struct {
	Workers       int
	SearchOptions []search.Option
	Logger        types.Logger
	Metrics       types.MetricsCollector
}

// Option represents a functional option for configuring a Runner.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, default search options and
// no-op observability sinks.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  logger.NewNop(),
		Metrics: metrics.NewNop(),
	}
}

// WithWorkers sets the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithSearchOptions appends options passed to every engine.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.SearchOptions = append(o.SearchOptions, opts...)
	}
}

// WithLogger sets the logger shared by the runner and its engines.
func WithLogger(l types.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the collector shared by the runner and its engines.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// Runner solves jobs concurrently. It is safe for concurrent use.
type Runner struct {
	options    Options
	returnPath bool
	engines    [burrow.MaxDepth + 1]*search.Engine
	cache      *xsync.MapOf[uint64, cached]
}

// New builds a Runner with one engine per supported bay depth.
func New(opts ...Option) *Runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	engineOpts := append([]search.Option{
		search.WithLogger(cfg.Logger),
		search.WithMetrics(cfg.Metrics),
	}, cfg.SearchOptions...)

	r := &Runner{
		options: cfg,
		cache:   xsync.NewMapOf[uint64, cached](),
	}
	for d := 1; d <= burrow.MaxDepth; d++ {
		r.engines[d] = search.New(burrow.MustCodec(d), engineOpts...)
	}
	var probe search.Options
	for _, opt := range cfg.SearchOptions {
		opt(&probe)
	}
	r.returnPath = probe.ReturnPath

	return r
}

// Key fingerprints a configuration together with its bay depth. The same
// word means different burrows at different depths.
func Key(depth int, c burrow.Configuration) uint64 {
	var buf [9]byte
	buf[0] = byte(depth)
	binary.LittleEndian.PutUint64(buf[1:], uint64(c))

	return xxh3.Hash(buf[:])
}

// Codec returns the codec of the engine for depth, or nil outside 1..MaxDepth.
func (r *Runner) Codec(depth int) burrow.Codec {
	if depth < 1 || depth > burrow.MaxDepth {
		return nil
	}

	return r.engines[depth].Codec()
}

// CacheSize returns the number of memoised outcomes.
func (r *Runner) CacheSize() int { return r.cache.Size() }

// Run solves every job and returns their outcomes in job order. The error is
// the context error when ctx was cancelled before all jobs started; job
// failures are reported per Outcome only.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	out := make([]Outcome, len(jobs))
	idx := make(chan int)

	workers := min(r.options.Workers, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = r.Solve(jobs[i])
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(jobs); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case idx <- next:
		}
	}
	close(idx)
	wg.Wait()

	if next < len(jobs) {
		err := ctx.Err()
		for i := next; i < len(jobs); i++ {
			out[i] = Outcome{Name: jobs[i].Name, Depth: jobs[i].Grid.Depth(), Err: err}
		}
		r.options.Logger.Warn("batch cancelled", "done", next, "total", len(jobs), "error", err)

		return out, err
	}
	r.options.Logger.Info("batch finished", "jobs", len(jobs), "cached", r.cache.Size())

	return out, nil
}

// Solve runs one job on the calling goroutine, consulting the cache first.
func (r *Runner) Solve(job Job) Outcome {
	depth := job.Grid.Depth()
	o := Outcome{Name: job.Name, Depth: depth}
	if depth < 1 || depth > burrow.MaxDepth {
		o.Err = fmt.Errorf("%s: %w: got %d", job.Name, burrow.ErrBadDepth, depth)
		return o
	}

	eng := r.engines[depth]
	start, err := eng.Codec().Encode(job.Grid)
	if err != nil {
		o.Err = fmt.Errorf("%s: %w", job.Name, err)
		return o
	}
	o.Start = start

	key := Key(depth, start)
	if hit, ok := r.cache.Load(key); ok {
		r.options.Metrics.RecordCacheLookup(true)
		r.options.Logger.Debug("cache hit", "job", job.Name, "key", key)
		return fill(o, hit, true)
	}
	r.options.Metrics.RecordCacheLookup(false)

	stored, _ := r.cache.LoadOrStore(key, r.solve(eng, start))

	return fill(o, stored, false)
}

func (r *Runner) solve(eng *search.Engine, start burrow.Configuration) cached {
	res, err := eng.Solve(start)
	if err != nil {
		return cached{err: err}
	}
	entry := cached{cost: res.Cost, expanded: res.Expanded}
	if r.returnPath {
		path, err := search.Reconstruct(eng.Codec(), res.Visited, res.Goal)
		if err != nil {
			return cached{err: err}
		}
		entry.path = path
	}

	return entry
}

func fill(o Outcome, c cached, hit bool) Outcome {
	o.Cost = c.cost
	o.Expanded = c.expanded
	o.Path = c.path
	o.Cached = hit
	if c.err != nil {
		o.Err = fmt.Errorf("%s: %w", o.Name, c.err)
	}

	return o
}
