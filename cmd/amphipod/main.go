// Command amphipod reads burrow diagrams and prints the minimum total energy
// that sorts every unit into its own bay.
//
// Usage:
//
//	amphipod [-config amphipod.yaml] [-unfold] [-trace] [-path] [-workers N] [file ...]
//
// With no file (or "-") the diagram is read from standard input. Each input
// prints "name: cost"; with -unfold the four-deep variant is solved too and
// printed as "name (unfolded): cost".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/amphipod/batch"
	"github.com/katalvlaran/amphipod/config"
	"github.com/katalvlaran/amphipod/internal/logging"
	"github.com/katalvlaran/amphipod/internal/metrics"
	"github.com/katalvlaran/amphipod/parse"
	"github.com/katalvlaran/amphipod/search"
	"github.com/katalvlaran/amphipod/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "amphipod:", err)
		}
		os.Exit(1)
	}
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("amphipod", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	unfold := fs.Bool("unfold", false, "also solve the four-deep variant")
	trace := fs.Bool("trace", false, "log every expansion at debug level")
	showPath := fs.Bool("path", false, "print the cheapest sequence of moves")
	workers := fs.Int("workers", 0, "worker goroutines (0 keeps the configured value)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if *unfold {
		cfg.Puzzle.Unfold = true
	}
	if *trace {
		cfg.Search.Trace = true
		cfg.Log.Level = "debug"
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(stderr, cfg.Log.Format, cfg.Log.Level)

	var collector types.MetricsCollector = metrics.NewNop()
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		collector = metrics.NewPrometheus(reg, cfg.Metrics.Namespace)
		if cfg.Metrics.Listen != "" {
			srvCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				if err := metrics.Serve(srvCtx, cfg.Metrics.Listen, reg, log); err != nil {
					log.Error("metrics server failed", "error", err)
				}
			}()
		}
	}

	jobs, err := readJobs(fs.Args(), stdin, cfg.Puzzle.Unfold)
	if err != nil {
		return err
	}

	searchOpts := cfg.Search.Options()
	if *showPath {
		searchOpts = append(searchOpts, search.WithReturnPath())
	}
	runner := batch.New(
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithSearchOptions(searchOpts...),
		batch.WithLogger(log),
		batch.WithMetrics(collector),
	)
	out, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	var failed int
	for _, o := range out {
		if o.Err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: error: %v\n", o.Name, o.Err)
			continue
		}
		fmt.Fprintf(stdout, "%s: %d\n", o.Name, o.Cost)
		if *showPath {
			fmt.Fprintln(stdout, o.Path.Render(runner.Codec(o.Depth)))
			fmt.Fprintln(stdout)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d instances failed", failed, len(out))
	}

	return nil
}

// readJobs parses every named file ("-" is stdin) into one job, plus an
// unfolded job per file when unfold is set.
func readJobs(names []string, stdin io.Reader, unfold bool) ([]batch.Job, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	var jobs []batch.Job
	for _, name := range names {
		data, err := readInput(name, stdin)
		if err != nil {
			return nil, err
		}
		g, err := parse.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		jobs = append(jobs, batch.Job{Name: name, Grid: g})
		if unfold {
			g, err := parse.ParseString(data, parse.WithUnfold())
			if err != nil {
				return nil, fmt.Errorf("%s (unfolded): %w", name, err)
			}
			jobs = append(jobs, batch.Job{Name: name + " (unfolded)", Grid: g})
		}
	}

	return jobs, nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
