package burrow

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	bayBits    = 9
	bayMask    = uint64(1)<<bayBits - 1
	stopBits   = 3
	stopMask   = uint64(1)<<stopBits - 1
	stopFlag   = uint64(0b100)
	hallOffset = NumBays * bayBits
)

// bayPattern repeats the 2-bit kind of bay b over eight bits; XOR with a bay
// word leaves zeros exactly where the bay holds its own kind.
var bayPattern = [NumBays]uint64{0x00, 0x55, 0xAA, 0xFF}

// rangeMask[lo][hi] selects the occupancy flags of every stop in [lo, hi].
var rangeMask = buildRangeMasks()

func buildRangeMasks() [HallwayLen][HallwayLen]uint64 {
	var m [HallwayLen][HallwayLen]uint64
	for lo := 0; lo < HallwayLen; lo++ {
		var acc uint64
		for hi := lo; hi < HallwayLen; hi++ {
			if k := stopIndex[hi]; k >= 0 {
				acc |= stopFlag << (hallOffset + stopBits*k)
			}
			m[lo][hi] = acc
		}
	}

	return m
}

// Packed is the single-word Codec. It is immutable and safe for concurrent use.
type Packed struct {
	depth int
	goal  Configuration
}

// Compile-time assertion that Packed implements Codec.
var _ Codec = (*Packed)(nil)

// NewCodec returns a Packed codec for bays of the given depth.
// Returns ErrBadDepth unless 1 <= depth <= MaxDepth.
func NewCodec(depth int) (*Packed, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	p := &Packed{depth: depth}
	goal, err := p.Encode(SolvedGrid(depth))
	if err != nil {
		return nil, err
	}
	p.goal = goal

	return p, nil
}

// MustCodec is like NewCodec but panics on an invalid depth.
func MustCodec(depth int) *Packed {
	p, err := NewCodec(depth)
	if err != nil {
		panic(err)
	}

	return p
}

// Depth returns the bay depth.
func (p *Packed) Depth() int { return p.depth }

// Goal returns the packed goal configuration.
func (p *Packed) Goal() Configuration { return p.goal }

func bayWord(c Configuration, b int) uint64 {
	return uint64(c) >> (bayBits * b) & bayMask
}

func withBayWord(c Configuration, b int, w uint64) Configuration {
	shift := bayBits * b
	return Configuration(uint64(c)&^(bayMask<<shift) | w<<shift)
}

// occupancy returns n for a word 1<<(2n) | types.
func occupancy(w uint64) int { return (bits.Len64(w) - 1) / 2 }

// ownKindOnly reports whether every occupied slot of bay b holds kind b.
func ownKindOnly(w uint64, n, b int) bool {
	low := uint64(1)<<(2*n) - 1
	return (w^bayPattern[b])&low == 0
}

func hallField(c Configuration, k int) uint64 {
	return uint64(c) >> (hallOffset + stopBits*k) & stopMask
}

// Encode packs g. The Grid must have bays of length Depth(), no gaps, empty
// mouths and exactly Depth() units of every kind.
func (p *Packed) Encode(g Grid) (Configuration, error) {
	var c Configuration
	var counts [NumBays]int

	for b := 0; b < NumBays; b++ {
		bay := g.Bays[b]
		if len(bay) != p.depth {
			return 0, fmt.Errorf("%w: bay %d has %d cells, want %d", ErrBayLength, b, len(bay), p.depth)
		}
		w := uint64(1)
		n := 0
		// Walk from the bottom up; once a vacancy is seen nothing may follow.
		for d := p.depth - 1; d >= 0; d-- {
			u := bay[d]
			if u == Empty {
				continue
			}
			if !u.Valid() {
				return 0, fmt.Errorf("%w: %d in bay %d depth %d", ErrUnknownUnit, uint8(u), b, d)
			}
			if d != p.depth-1-n {
				return 0, fmt.Errorf("%w: bay %d depth %d", ErrBayGap, b, d)
			}
			w = w&^(1<<(2*n)) | uint64(u)<<(2*n) | 1<<(2*n+2)
			n++
			counts[u]++
		}
		c = withBayWord(c, b, w)
	}

	for pos, u := range g.Hallway {
		if u == Empty {
			continue
		}
		if !u.Valid() {
			return 0, fmt.Errorf("%w: %d at hallway %d", ErrUnknownUnit, uint8(u), pos)
		}
		k := stopIndex[pos]
		if k < 0 {
			return 0, fmt.Errorf("%w: position %d", ErrMouthOccupied, pos)
		}
		c |= Configuration((stopFlag | uint64(u)) << (hallOffset + stopBits*k))
		counts[u]++
	}

	for kind, n := range counts {
		if n != p.depth {
			return 0, fmt.Errorf("%w: %s appears %d times, want %d", ErrUnitCount, Unit(kind), n, p.depth)
		}
	}

	return c, nil
}

// Decode unpacks c into a freshly allocated Grid.
func (p *Packed) Decode(c Configuration) Grid {
	g := NewGrid(p.depth)
	for b := 0; b < NumBays; b++ {
		w := bayWord(c, b)
		n := occupancy(w)
		for slot := 0; slot < n; slot++ {
			g.Bays[b][p.depth-1-slot] = Unit(w >> (2 * slot) & 0b11)
		}
	}
	for k, pos := range Stops {
		if f := hallField(c, k); f&stopFlag != 0 {
			g.Hallway[pos] = Unit(f & 0b11)
		}
	}

	return g
}

// Format renders c in the puzzle's textual form.
func (p *Packed) Format(c Configuration) string {
	return p.Decode(c).String()
}

// BayTopMovable returns the outermost unit of bay b and its depth.
// ok is false when b is out of range, the bay is empty, or it holds only
// its own kind (such units never need to move again).
func (p *Packed) BayTopMovable(c Configuration, b int) (u Unit, depth int, ok bool) {
	if b < 0 || b >= NumBays {
		return Empty, 0, false
	}
	w := bayWord(c, b)
	n := occupancy(w)
	if n == 0 || ownKindOnly(w, n, b) {
		return Empty, 0, false
	}

	return Unit(w >> (2 * (n - 1)) & 0b11), p.depth - n, true
}

// BayAcceptDepth returns the depth the next unit of kind b would occupy.
func (p *Packed) BayAcceptDepth(c Configuration, b int) (int, bool) {
	if b < 0 || b >= NumBays {
		return 0, false
	}
	w := bayWord(c, b)
	n := occupancy(w)
	if n >= p.depth || !ownKindOnly(w, n, b) {
		return 0, false
	}

	return p.depth - n - 1, true
}

// BayComplete reports whether bay b is full of its own kind.
func (p *Packed) BayComplete(c Configuration, b int) bool {
	if b < 0 || b >= NumBays {
		return false
	}
	w := bayWord(c, b)
	n := occupancy(w)

	return n == p.depth && ownKindOnly(w, n, b)
}

// BayUnit returns the unit at depth d of bay b.
func (p *Packed) BayUnit(c Configuration, b, d int) (Unit, bool) {
	if b < 0 || b >= NumBays || d < 0 || d >= p.depth {
		return Empty, false
	}
	w := bayWord(c, b)
	slot := p.depth - 1 - d
	if slot >= occupancy(w) {
		return Empty, false
	}

	return Unit(w >> (2 * slot) & 0b11), true
}

// HallwayUnit returns the unit resting at hallway position pos.
func (p *Packed) HallwayUnit(c Configuration, pos int) (Unit, bool) {
	if !IsStop(pos) {
		return Empty, false
	}
	f := hallField(c, stopIndex[pos])
	if f&stopFlag == 0 {
		return Empty, false
	}

	return Unit(f & 0b11), true
}

// HallwayClear reports whether no unit rests in the closed range between from
// and to. Positions are clamped to the hallway. Complexity: O(1).
func (p *Packed) HallwayClear(c Configuration, from, to int) bool {
	if from > to {
		from, to = to, from
	}
	if from < 0 {
		from = 0
	}
	if to >= HallwayLen {
		to = HallwayLen - 1
	}
	if from > to {
		return true
	}

	return uint64(c)&rangeMask[from][to] == 0
}

// SetBay places u on top of bay b. d must equal the depth returned by the
// next free slot, i.e. Depth()-occupancy-1.
func (p *Packed) SetBay(c Configuration, b, d int, u Unit) (Configuration, error) {
	if b < 0 || b >= NumBays {
		return c, fmt.Errorf("%w: %d", ErrBayIndex, b)
	}
	if !u.Valid() {
		return c, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	w := bayWord(c, b)
	n := occupancy(w)
	if n >= p.depth {
		return c, fmt.Errorf("%w: bay %d is full", ErrSlotOccupied, b)
	}
	if d != p.depth-n-1 {
		return c, fmt.Errorf("%w: bay %d depth %d, next free is %d", ErrDepthMismatch, b, d, p.depth-n-1)
	}
	w = w&^(1<<(2*n)) | uint64(u)<<(2*n) | 1<<(2*n+2)

	return withBayWord(c, b, w), nil
}

// ClearBay removes the top unit of bay b, which must sit at depth d.
func (p *Packed) ClearBay(c Configuration, b, d int) (Configuration, error) {
	if b < 0 || b >= NumBays {
		return c, fmt.Errorf("%w: %d", ErrBayIndex, b)
	}
	w := bayWord(c, b)
	n := occupancy(w)
	if n == 0 {
		return c, fmt.Errorf("%w: bay %d", ErrSlotEmpty, b)
	}
	if d != p.depth-n {
		return c, fmt.Errorf("%w: bay %d depth %d, top is %d", ErrDepthMismatch, b, d, p.depth-n)
	}
	top := uint64(1) << (2 * (n - 1))
	w = w&(top-1) | top

	return withBayWord(c, b, w), nil
}

// SetHallway places u at hallway stop pos.
func (p *Packed) SetHallway(c Configuration, pos int, u Unit) (Configuration, error) {
	if pos < 0 || pos >= HallwayLen {
		return c, fmt.Errorf("%w: %d", ErrSlotIndex, pos)
	}
	k := stopIndex[pos]
	if k < 0 {
		return c, fmt.Errorf("%w: %d", ErrNotStop, pos)
	}
	if !u.Valid() {
		return c, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	if hallField(c, k)&stopFlag != 0 {
		return c, fmt.Errorf("%w: hallway %d", ErrSlotOccupied, pos)
	}

	return c | Configuration((stopFlag|uint64(u))<<(hallOffset+stopBits*k)), nil
}

// ClearHallway removes the unit at hallway stop pos.
func (p *Packed) ClearHallway(c Configuration, pos int) (Configuration, error) {
	if pos < 0 || pos >= HallwayLen {
		return c, fmt.Errorf("%w: %d", ErrSlotIndex, pos)
	}
	k := stopIndex[pos]
	if k < 0 {
		return c, fmt.Errorf("%w: %d", ErrNotStop, pos)
	}
	if hallField(c, k)&stopFlag == 0 {
		return c, fmt.Errorf("%w: hallway %d", ErrSlotEmpty, pos)
	}

	return c &^ Configuration(stopMask<<(hallOffset+stopBits*k)), nil
}

// IsGoal reports whether c is the solved configuration.
func (p *Packed) IsGoal(c Configuration) bool { return c == p.goal }

// String renders g as
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
func (g Grid) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, u := range g.Hallway {
		sb.WriteByte(u.Letter())
	}
	sb.WriteString("#\n")
	for d := 0; d < g.Depth(); d++ {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for b := 0; b < NumBays; b++ {
			sb.WriteByte(g.Bays[b][d].Letter())
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########")

	return sb.String()
}
