package config

import "github.com/katalvlaran/amphipod/search"

// Options translates the search section into engine options.
func (s SearchConfig) Options() []search.Option {
	opts := []search.Option{
		search.WithMaxExpansions(s.MaxExpansions),
		search.WithVisitedHint(s.VisitedHint),
	}
	if s.Trace {
		opts = append(opts, search.WithTrace())
	}
	if !s.Heuristic {
		opts = append(opts, search.WithoutHeuristic())
	}

	return opts
}
