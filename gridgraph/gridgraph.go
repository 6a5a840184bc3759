package gridgraph

import (
	"bufio"
	"io"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; track the cheapest passable cell.
	minCost, seen := 0, false
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.WallThreshold && (!seen || v < minCost) {
				minCost, seen = v, true
			}
		}
	}
	if minCost < 0 {
		minCost = 0
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}

	return gg, nil
}

// FromDigits reads one row per non-blank line, each character a digit 0..9,
// and builds a GridGraph with opts.
func FromDigits(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, ErrBadDigit
			}
			row[i] = int(c - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewGridGraph(rows, opts)
}

// Tile returns a grid factor times wider and taller. Tile (i, j) holds every
// original value raised by i+j, wrapping values above 9 back to 1.
// Complexity: O(factor²·W·H).
func (gg *GridGraph) Tile(factor int) (*GridGraph, error) {
	if factor < 1 {
		return nil, ErrBadFactor
	}
	out := make([][]int, gg.Height*factor)
	for ty := 0; ty < factor; ty++ {
		for y := 0; y < gg.Height; y++ {
			row := make([]int, gg.Width*factor)
			for tx := 0; tx < factor; tx++ {
				for x := 0; x < gg.Width; x++ {
					row[tx*gg.Width+x] = wrapDigit(gg.CellValues[y][x] + tx + ty)
				}
			}
			out[ty*gg.Height+y] = row
		}
	}

	return NewGridGraph(out, GridOptions{WallThreshold: gg.WallThreshold, Conn: gg.Conn})
}

// wrapDigit folds v into 1..9; values of 9 or less are kept.
func wrapDigit(v int) int {
	if v <= 9 {
		return v
	}

	return (v-1)%9 + 1
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Passable reports whether the cell at (x,y) can be entered.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.CellValues[y][x] >= gg.WallThreshold
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
