package parse_test

import (
	"fmt"

	"github.com/katalvlaran/amphipod/parse"
)

// ExampleParseString reads the sample diagram and its unfolded variant.
func ExampleParseString() {
	const diagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

	g, _ := parse.ParseString(diagram, parse.WithUnfold())
	fmt.Println("depth:", g.Depth())
	fmt.Println(g)

	// Output:
	// depth: 4
	// #############
	// #...........#
	// ###B#C#B#D###
	//   #D#C#B#A#
	//   #D#B#A#C#
	//   #A#D#C#A#
	//   #########
}
