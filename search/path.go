package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/movegen"
)

// Path is an ordered sequence of configurations from start to goal.
type Path []Step

// Reconstruct walks back from goal through visited by applying the inverse of
// each recorded move, and returns the steps from the start to goal.
//
// Every predecessor must itself be finalised, and its cost plus the move cost
// must equal the successor's cost; otherwise ErrBrokenTrail is returned.
// visited is only read.
func Reconstruct(codec burrow.Codec, visited Visited, goal burrow.Configuration) (Path, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	cur := goal
	rec, ok := visited.Lookup(cur)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotVisited, goal)
	}

	path := Path{{Config: cur, Cost: rec.Cost, Move: rec.Move, HasMove: rec.HasMove}}
	for rec.HasMove {
		if len(path) > visited.Len() {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenTrail, cur)
		}
		prev, stepCost, err := movegen.Apply(codec, cur, rec.Move.Inverse())
		if err != nil {
			return nil, fmt.Errorf("%w: undo %v: %w", ErrBrokenTrail, rec.Move, err)
		}
		prevRec, ok := visited.Lookup(prev)
		if !ok {
			return nil, fmt.Errorf("%w: predecessor %v of %v not finalised", ErrBrokenTrail, prev, cur)
		}
		if prevRec.Cost+stepCost != rec.Cost {
			return nil, fmt.Errorf("%w: cost %d + %d != %d at %v",
				ErrBrokenTrail, prevRec.Cost, stepCost, rec.Cost, cur)
		}
		path = append(path, Step{Config: prev, Cost: prevRec.Cost, Move: prevRec.Move, HasMove: prevRec.HasMove})
		cur, rec = prev, prevRec
	}

	// Collected goal-first; flip to start-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Moves returns the moves of the path in order (one fewer than its steps).
func (p Path) Moves() []movegen.Move {
	if len(p) == 0 {
		return nil
	}
	moves := make([]movegen.Move, 0, len(p)-1)
	for _, s := range p[1:] {
		moves = append(moves, s.Move)
	}

	return moves
}

// Render formats every configuration of the path with its move and
// accumulated cost, separated by blank lines.
func (p Path) Render(codec burrow.Codec) string {
	var sb strings.Builder
	for i, s := range p {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if s.HasMove {
			fmt.Fprintf(&sb, "%v (cost %d)\n", s.Move, s.Cost)
		} else {
			fmt.Fprintf(&sb, "start (cost %d)\n", s.Cost)
		}
		sb.WriteString(codec.Format(s.Config))
	}

	return sb.String()
}
