package search_test

import (
	"fmt"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/parse"
	"github.com/katalvlaran/amphipod/search"
)

// ExampleEngine_Solve solves the two-deep sample burrow and its unfolded
// four-deep variant.
func ExampleEngine_Solve() {
	const diagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

	for _, unfold := range []bool{false, true} {
		var opts []parse.Option
		if unfold {
			opts = append(opts, parse.WithUnfold())
		}
		g, err := parse.ParseString(diagram, opts...)
		if err != nil {
			fmt.Println("parse:", err)
			return
		}
		codec := burrow.MustCodec(g.Depth())
		start, err := codec.Encode(g)
		if err != nil {
			fmt.Println("encode:", err)
			return
		}
		res, err := search.New(codec).Solve(start)
		if err != nil {
			fmt.Println("solve:", err)
			return
		}
		fmt.Printf("depth %d: %d\n", codec.Depth(), res.Cost)
	}

	// Output:
	// depth 2: 12521
	// depth 4: 44169
}

// ExampleReconstruct recovers the cheapest move sequence of a small burrow
// where the first two bays hold each other's top units.
func ExampleReconstruct() {
	g, _ := parse.ParseString(`#############
#...........#
###B#A#C#D###
  #A#B#C#D#
  #########`)
	codec := burrow.MustCodec(g.Depth())
	start, _ := codec.Encode(g)

	res, _ := search.New(codec, search.WithReturnPath()).Solve(start)
	path, _ := search.Reconstruct(codec, res.Visited, res.Goal)
	fmt.Println("cost:", res.Cost)
	fmt.Println("moves:", len(path.Moves()))

	// Output:
	// cost: 46
	// moves: 4
}
