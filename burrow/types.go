// Package burrow defines the unit kinds, the raw Grid, the packed
// Configuration and the Codec contract shared by move generation,
// estimation and search.
package burrow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Encode and the Codec mutators.
var (
	// ErrBadDepth indicates a bay depth outside 1..MaxDepth.
	ErrBadDepth = errors.New("burrow: bay depth must be between 1 and 4")

	// ErrBayLength indicates a Grid bay whose length differs from the codec depth.
	ErrBayLength = errors.New("burrow: bay length does not match depth")

	// ErrBayGap indicates a unit resting above an empty bay slot.
	ErrBayGap = errors.New("burrow: bay has a gap below a unit")

	// ErrMouthOccupied indicates a unit placed on a hallway position above a bay mouth.
	ErrMouthOccupied = errors.New("burrow: hallway position above a bay mouth is occupied")

	// ErrUnitCount indicates that some unit kind does not appear exactly depth times.
	ErrUnitCount = errors.New("burrow: unit count does not match depth")

	// ErrUnknownUnit indicates a cell value outside Amber..Empty.
	ErrUnknownUnit = errors.New("burrow: unknown unit")

	// ErrBayIndex indicates a bay index outside 0..NumBays-1.
	ErrBayIndex = errors.New("burrow: bay index out of range")

	// ErrSlotIndex indicates a hallway position outside 0..HallwayLen-1.
	ErrSlotIndex = errors.New("burrow: hallway position out of range")

	// ErrNotStop indicates a hallway position that cannot hold a unit.
	ErrNotStop = errors.New("burrow: hallway position is not a stopping point")

	// ErrSlotOccupied indicates a set on a cell that already holds a unit.
	ErrSlotOccupied = errors.New("burrow: cell already occupied")

	// ErrSlotEmpty indicates a clear on a cell that holds no unit.
	ErrSlotEmpty = errors.New("burrow: cell is empty")

	// ErrDepthMismatch indicates a bay set/clear that is not at the top of the stack.
	ErrDepthMismatch = errors.New("burrow: depth is not the top of the bay")
)

// Layout constants.
const (
	// HallwayLen is the number of hallway positions.
	HallwayLen = 11
	// NumBays is the number of bays.
	NumBays = 4
	// NumStops is the number of hallway positions a unit may stop on.
	NumStops = 7
	// MaxDepth is the deepest bay the packed layout can hold.
	MaxDepth = 4
)

// Stops lists the hallway positions a unit may rest on, left to right.
var Stops = [NumStops]int{0, 1, 3, 5, 7, 9, 10}

// stopIndex maps a hallway position to its index in Stops, or -1 for a mouth.
var stopIndex = [HallwayLen]int{0, 1, -1, 2, -1, 3, -1, 4, -1, 5, 6}

// Mouth returns the hallway position directly above bay b.
func Mouth(b int) int { return 2 * (b + 1) }

// IsStop reports whether pos is a hallway position a unit may rest on.
func IsStop(pos int) bool {
	return pos >= 0 && pos < HallwayLen && stopIndex[pos] >= 0
}

// Unit is the kind of a movable token. The zero value is Amber; Empty marks
// a vacant cell in a Grid and never appears inside a Configuration.
type Unit uint8

const (
	// Amber units cost 1 per step and live in bay 0.
	Amber Unit = iota
	// Bronze units cost 10 per step and live in bay 1.
	Bronze
	// Copper units cost 100 per step and live in bay 2.
	Copper
	// Desert units cost 1000 per step and live in bay 3.
	Desert
	// Empty marks a vacant cell.
	Empty
)

var unitCosts = [NumBays]uint64{1, 10, 100, 1000}

var unitNames = [...]string{"Amber", "Bronze", "Copper", "Desert", "Empty"}

// Units lists the four real unit kinds in bay order.
var Units = [NumBays]Unit{Amber, Bronze, Copper, Desert}

// Cost returns the per-step movement cost of u (0 for Empty).
func (u Unit) Cost() uint64 {
	if u > Desert {
		return 0
	}

	return unitCosts[u]
}

// Home returns the index of the bay u belongs to.
func (u Unit) Home() int { return int(u) }

// Valid reports whether u is one of the four real kinds.
func (u Unit) Valid() bool { return u <= Desert }

// Letter returns the single-character token used in textual grids.
func (u Unit) Letter() byte {
	if u > Desert {
		return '.'
	}

	return 'A' + byte(u)
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}

	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// UnitFromLetter maps 'A'..'D' to a Unit and '.' to Empty.
func UnitFromLetter(b byte) (Unit, bool) {
	switch {
	case b >= 'A' && b <= 'D':
		return Unit(b - 'A'), true
	case b == '.':
		return Empty, true
	default:
		return Empty, false
	}
}

// Configuration is a complete puzzle state packed into one word.
// See the package documentation for the bit layout.
type Configuration uint64

func (c Configuration) String() string { return fmt.Sprintf("%#015x", uint64(c)) }

// Grid is the raw cell assignment of a burrow.
// Bays[b][0] is the mouth of bay b and Bays[b][len-1] its bottom.
type Grid struct {
	Hallway [HallwayLen]Unit
	Bays    [NumBays][]Unit
}

// NewGrid returns a Grid with every cell Empty and bays of the given depth.
func NewGrid(depth int) Grid {
	var g Grid
	for i := range g.Hallway {
		g.Hallway[i] = Empty
	}
	for b := range g.Bays {
		g.Bays[b] = make([]Unit, depth)
		for d := range g.Bays[b] {
			g.Bays[b][d] = Empty
		}
	}

	return g
}

// SolvedGrid returns the goal Grid for the given depth: every bay full of its
// own kind and an empty hallway.
func SolvedGrid(depth int) Grid {
	g := NewGrid(depth)
	for b := range g.Bays {
		for d := range g.Bays[b] {
			g.Bays[b][d] = Units[b]
		}
	}

	return g
}

// Depth returns the length of the first bay.
func (g Grid) Depth() int { return len(g.Bays[0]) }

// Codec is the contract between the packed Configuration and everything that
// reads or writes it. All methods are pure: mutators return a new value.
//
// Depth indices count from the bay mouth (0) down to Depth()-1.
type Codec interface {
	// Depth returns the bay depth this codec was built for.
	Depth() int

	// Encode packs a Grid, validating its structure.
	Encode(g Grid) (Configuration, error)
	// Decode unpacks a Configuration into a fresh Grid.
	Decode(c Configuration) Grid
	// Format renders c as the five-or-more line textual grid.
	Format(c Configuration) string

	// BayTopMovable returns the outermost unit of bay b and its depth, unless
	// the bay is empty or holds only its own kind.
	BayTopMovable(c Configuration, b int) (Unit, int, bool)
	// BayAcceptDepth returns the depth the next unit entering bay b would
	// occupy, unless the bay is full or holds a foreign unit.
	BayAcceptDepth(c Configuration, b int) (int, bool)
	// BayComplete reports whether bay b is full of its own kind.
	BayComplete(c Configuration, b int) bool
	// BayUnit returns the unit at depth d of bay b, if any.
	BayUnit(c Configuration, b, d int) (Unit, bool)

	// HallwayUnit returns the unit resting at hallway position pos, if any.
	HallwayUnit(c Configuration, pos int) (Unit, bool)
	// HallwayClear reports whether every position in [min(from,to), max(from,to)]
	// is unoccupied.
	HallwayClear(c Configuration, from, to int) bool

	// SetBay places u at depth d of bay b; d must be the next free depth.
	SetBay(c Configuration, b, d int, u Unit) (Configuration, error)
	// ClearBay removes the unit at depth d of bay b; d must be the top depth.
	ClearBay(c Configuration, b, d int) (Configuration, error)
	// SetHallway places u at hallway stop pos.
	SetHallway(c Configuration, pos int, u Unit) (Configuration, error)
	// ClearHallway removes the unit at hallway stop pos.
	ClearHallway(c Configuration, pos int) (Configuration, error)

	// IsGoal reports whether every bay is complete and the hallway is empty.
	IsGoal(c Configuration) bool
}
