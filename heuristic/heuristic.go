// Package heuristic computes an admissible, consistent lower bound on the
// cost still needed to solve a burrow configuration, plus the exact change of
// that bound across a generated move.
//
// The bound ignores blocking and sums, scaled by unit step cost:
//
//   - hallway unit at slot s:             1 + |s − mouth(home)|
//   - unsettled unit at depth d of bay r:
//     r == home                           d + 4  (out, aside, back, in)
//     r != home                           d + 2 + |mouth(r) − mouth(home)|
//   - per bay, with k units still to arrive: 0 + 1 + … + (k−1)
//     (the arrivals fill depths k−1 … 0 below the mouth)
//
// A unit is settled when it sits in its own bay with only its own kind below.
// Every term counts steps any real plan must walk, so the sum never exceeds
// the true remaining cost.
package heuristic

import (
	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/movegen"
)

// Estimate scans c and returns the full lower bound. Complexity: O(NumBays·depth).
func Estimate(codec burrow.Codec, c burrow.Configuration) uint64 {
	var sum uint64
	depth := codec.Depth()

	for _, pos := range burrow.Stops {
		if u, ok := codec.HallwayUnit(c, pos); ok {
			sum += fromHallway(u, pos)
		}
	}

	for b := 0; b < burrow.NumBays; b++ {
		// Count the settled prefix from the bottom, then charge everything above it.
		settled := 0
		for d := depth - 1; d >= 0; d-- {
			u, ok := codec.BayUnit(c, b, d)
			if !ok || u.Home() != b {
				break
			}
			settled++
		}
		for d := depth - 1 - settled; d >= 0; d-- {
			u, ok := codec.BayUnit(c, b, d)
			if !ok {
				break
			}
			sum += fromBay(u, b, d)
		}
		if k := uint64(depth - settled); k > 1 {
			sum += k * (k - 1) / 2 * burrow.Units[b].Cost()
		}
	}

	return sum
}

// Delta returns Estimate(next) − Estimate(prev) for a move produced by
// movegen.Generate, without rescanning the configuration.
func Delta(m movegen.Move) int64 {
	hall := int64(fromHallway(m.Unit, m.Slot))
	if m.Dir == movegen.ToBay {
		// The unit leaves the hallway and settles at m.Depth, consuming the
		// deepest remaining fill term of its bay.
		return -hall - int64(uint64(m.Depth)*m.Unit.Cost())
	}

	return hall - int64(fromBay(m.Unit, m.Bay, m.Depth))
}

func fromHallway(u burrow.Unit, pos int) uint64 {
	return (1 + uint64(absDiff(pos, burrow.Mouth(u.Home())))) * u.Cost()
}

func fromBay(u burrow.Unit, b, d int) uint64 {
	home := u.Home()
	if home == b {
		return uint64(d+4) * u.Cost()
	}

	return uint64(d+2+absDiff(burrow.Mouth(b), burrow.Mouth(home))) * u.Cost()
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
