package movegen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amphipod/burrow"
)

// ErrInvariant indicates a move that the codec cannot apply to the
// configuration it was generated for. It is always a bug, never bad input.
var ErrInvariant = errors.New("movegen: move violates burrow invariants")

// Direction tells which end of a Move is the source.
type Direction uint8

const (
	// ToHallway moves the top unit of Bay at Depth out to hallway Slot.
	ToHallway Direction = iota
	// ToBay moves the unit at hallway Slot down into Bay at Depth.
	ToBay
)

func (d Direction) String() string {
	if d == ToBay {
		return "to-bay"
	}

	return "to-hallway"
}

// Move describes one single-leg transition. It is a pure value.
type Move struct {
	Unit  burrow.Unit
	Bay   int
	Depth int
	Slot  int
	Dir   Direction
}

// Inverse returns the move that undoes m: same unit, bay, depth and slot,
// opposite direction.
func (m Move) Inverse() Move {
	inv := m
	if m.Dir == ToBay {
		inv.Dir = ToHallway
	} else {
		inv.Dir = ToBay
	}

	return inv
}

// Steps returns the number of cells walked: depth+1 to reach the mouth,
// plus the hallway distance between mouth and slot.
func (m Move) Steps() uint64 {
	return uint64(m.Depth+1) + uint64(absDiff(m.Slot, burrow.Mouth(m.Bay)))
}

// Cost returns Steps scaled by the unit's per-step cost.
func (m Move) Cost() uint64 { return m.Steps() * m.Unit.Cost() }

func (m Move) String() string {
	if m.Dir == ToBay {
		return fmt.Sprintf("%c hallway %d -> bay %d depth %d", m.Unit.Letter(), m.Slot, m.Bay, m.Depth)
	}

	return fmt.Sprintf("%c bay %d depth %d -> hallway %d", m.Unit.Letter(), m.Bay, m.Depth, m.Slot)
}

// Legal returns every legal move from c in a freshly allocated slice.
func Legal(codec burrow.Codec, c burrow.Configuration) []Move {
	return Generate(codec, c, nil)
}

// Generate appends every legal move from c to buf and returns the extended
// slice. Passing a reused buf[:0] avoids an allocation per expansion.
//
// Order: hallway → bay moves first (left to right), then bay → hallway moves
// bay by bay, stops left to right.
func Generate(codec burrow.Codec, c burrow.Configuration, buf []Move) []Move {
	// Hallway → bay.
	for _, pos := range burrow.Stops {
		u, ok := codec.HallwayUnit(c, pos)
		if !ok {
			continue
		}
		home := u.Home()
		depth, ok := codec.BayAcceptDepth(c, home)
		if !ok {
			continue
		}
		mouth := burrow.Mouth(home)
		// Exclude the unit's own slot, include the mouth.
		from := pos + 1
		if mouth < pos {
			from = pos - 1
		}
		if !codec.HallwayClear(c, from, mouth) {
			continue
		}
		buf = append(buf, Move{Unit: u, Bay: home, Depth: depth, Slot: pos, Dir: ToBay})
	}

	// Bay → hallway.
	for b := 0; b < burrow.NumBays; b++ {
		u, depth, ok := codec.BayTopMovable(c, b)
		if !ok {
			continue
		}
		mouth := burrow.Mouth(b)
		for _, pos := range burrow.Stops {
			if !codec.HallwayClear(c, mouth, pos) {
				continue
			}
			buf = append(buf, Move{Unit: u, Bay: b, Depth: depth, Slot: pos, Dir: ToHallway})
		}
	}

	return buf
}

// Apply performs m on c and returns the successor and the move cost.
// Any structural mismatch is reported as ErrInvariant wrapping the codec error.
func Apply(codec burrow.Codec, c burrow.Configuration, m Move) (burrow.Configuration, uint64, error) {
	var (
		next burrow.Configuration
		err  error
	)
	switch m.Dir {
	case ToHallway:
		if u, ok := codec.BayUnit(c, m.Bay, m.Depth); !ok || u != m.Unit {
			return c, 0, fmt.Errorf("%w: %v: bay holds %v", ErrInvariant, m, u)
		}
		if next, err = codec.ClearBay(c, m.Bay, m.Depth); err != nil {
			return c, 0, fmt.Errorf("%w: %v: %w", ErrInvariant, m, err)
		}
		if next, err = codec.SetHallway(next, m.Slot, m.Unit); err != nil {
			return c, 0, fmt.Errorf("%w: %v: %w", ErrInvariant, m, err)
		}
	case ToBay:
		if u, ok := codec.HallwayUnit(c, m.Slot); !ok || u != m.Unit {
			return c, 0, fmt.Errorf("%w: %v: hallway holds %v", ErrInvariant, m, u)
		}
		if next, err = codec.ClearHallway(c, m.Slot); err != nil {
			return c, 0, fmt.Errorf("%w: %v: %w", ErrInvariant, m, err)
		}
		if next, err = codec.SetBay(next, m.Bay, m.Depth, m.Unit); err != nil {
			return c, 0, fmt.Errorf("%w: %v: %w", ErrInvariant, m, err)
		}
	default:
		return c, 0, fmt.Errorf("%w: unknown direction %d", ErrInvariant, m.Dir)
	}

	return next, m.Cost(), nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
