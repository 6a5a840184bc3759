package search_test

import (
	"testing"

	"github.com/katalvlaran/amphipod/parse"
	"github.com/katalvlaran/amphipod/search"
)

// BenchmarkSolve_Sample measures a full A* solve of the two-deep sample.
func BenchmarkSolve_Sample(b *testing.B) {
	codec, c := mustEncode(b, sample)
	eng := search.New(codec)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Solve(c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Unfolded measures the four-deep variant.
func BenchmarkSolve_Unfolded(b *testing.B) {
	codec, c := mustEncode(b, sample, parse.WithUnfold())
	eng := search.New(codec, search.WithVisitedHint(1<<18))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Solve(c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_UniformCost measures the sample without the estimate.
func BenchmarkSolve_UniformCost(b *testing.B) {
	codec, c := mustEncode(b, sample)
	eng := search.New(codec, search.WithoutHeuristic())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Solve(c); err != nil {
			b.Fatal(err)
		}
	}
}
