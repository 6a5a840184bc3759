// Package amphipod finds the minimum total energy needed to sort the units of
// an amphipod burrow into their home bays.
//
// What is a burrow?
//
//	An 11-cell hallway with four bays hanging below positions 2, 4, 6 and 8.
//	Each bay is a stack of fixed depth (1..4). Units of kinds A, B, C and D
//	cost 1, 10, 100 and 1000 per step and belong in bays 0..3.
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Layout of the module:
//
//	burrow/       Unit, Grid, the packed Configuration word and its Codec
//	movegen/      legal single-leg moves, their costs, Apply and Inverse
//	heuristic/    admissible, consistent lower bound with O(1) move deltas
//	pqueue/       generic min-heap frontier shared by both searches
//	search/       A* engine (or uniform-cost) and path reconstruction
//	parse/        textual diagram reader, with the four-deep unfold
//	gridgraph/    weighted grid A* companion on the same frontier
//	batch/        concurrent multi-instance runner with a result cache
//	config/       YAML configuration
//	cmd/amphipod  command line front end
//
// Quick start:
//
//	g, _ := parse.ParseString(diagram)
//	codec := burrow.MustCodec(g.Depth())
//	start, _ := codec.Encode(g)
//	res, err := search.New(codec).Solve(start)
//	//            res.Cost == 12521 for the diagram above
package amphipod
