// Package parse reads the textual burrow diagram into a burrow.Grid.
//
// Accepted form (trailing spaces optional, any number of bay rows 1..4):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway line may carry units (A–D) on stopping positions. Bay cells are
// read from columns 3, 5, 7 and 9; '.' marks an empty cell.
//
// WithUnfold inserts the two fixed rows
//
//	  #D#C#B#A#
//	  #D#B#A#C#
//
// after the first bay row, producing the four-deep variant of a two-deep
// diagram.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/amphipod/burrow"
)

// ErrMalformed indicates input that does not follow the diagram format.
var ErrMalformed = errors.New("parse: malformed burrow diagram")

// UnfoldRows are the rows WithUnfold inserts below the first bay row.
var UnfoldRows = [2]string{"  #D#C#B#A#", "  #D#B#A#C#"}

// bayColumns are the byte offsets of the four bay cells in a bay row.
var bayColumns = [burrow.NumBays]int{3, 5, 7, 9}

// Options configures Parse.
type Options struct {
	Unfold bool
}

// Option represents a functional option for configuring Parse.
type Option func(*Options)

// WithUnfold inserts UnfoldRows after the first bay row.
func WithUnfold() Option {
	return func(o *Options) {
		o.Unfold = true
	}
}

// Parse reads a diagram from r.
func Parse(r io.Reader, opts ...Option) (burrow.Grid, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return burrow.Grid{}, fmt.Errorf("parse: read: %w", err)
	}

	return parseLines(lines, cfg)
}

// ParseString parses a diagram held in a string.
func ParseString(s string, opts ...Option) (burrow.Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

func parseLines(lines []string, cfg Options) (burrow.Grid, error) {
	// top wall, hallway, at least one bay row, bottom wall
	if len(lines) < 4 {
		return burrow.Grid{}, fmt.Errorf("%w: want at least 4 lines, got %d", ErrMalformed, len(lines))
	}
	if !isWall(lines[0]) {
		return burrow.Grid{}, fmt.Errorf("%w: line 1 is not a wall", ErrMalformed)
	}
	if last := lines[len(lines)-1]; !isWall(last) {
		return burrow.Grid{}, fmt.Errorf("%w: last line is not a wall", ErrMalformed)
	}

	rows := append([]string(nil), lines[2:len(lines)-1]...)
	if cfg.Unfold {
		rows = append(rows[:1], append(UnfoldRows[:], rows[1:]...)...)
	}
	depth := len(rows)
	if depth > burrow.MaxDepth {
		return burrow.Grid{}, fmt.Errorf("%w: %d bay rows, at most %d", ErrMalformed, depth, burrow.MaxDepth)
	}

	g := burrow.NewGrid(depth)
	if err := parseHallway(lines[1], &g); err != nil {
		return burrow.Grid{}, err
	}
	for d, row := range rows {
		if err := parseBayRow(row, d, &g); err != nil {
			return burrow.Grid{}, err
		}
	}

	return g, nil
}

func parseHallway(line string, g *burrow.Grid) error {
	if len(line) != burrow.HallwayLen+2 || line[0] != '#' || line[len(line)-1] != '#' {
		return fmt.Errorf("%w: hallway line %q", ErrMalformed, line)
	}
	for pos := 0; pos < burrow.HallwayLen; pos++ {
		u, ok := burrow.UnitFromLetter(line[pos+1])
		if !ok {
			return fmt.Errorf("%w: hallway cell %d is %q", ErrMalformed, pos, line[pos+1])
		}
		g.Hallway[pos] = u
	}

	return nil
}

func parseBayRow(row string, d int, g *burrow.Grid) error {
	if len(row) < bayColumns[burrow.NumBays-1]+2 {
		return fmt.Errorf("%w: bay row %q too short", ErrMalformed, row)
	}
	for b, col := range bayColumns {
		if row[col-1] != '#' || row[col+1] != '#' {
			return fmt.Errorf("%w: bay row %q lacks walls around column %d", ErrMalformed, row, col)
		}
		u, ok := burrow.UnitFromLetter(row[col])
		if !ok {
			return fmt.Errorf("%w: bay row %q has %q in bay %d", ErrMalformed, row, row[col], b)
		}
		g.Bays[b][d] = u
	}

	return nil
}

func isWall(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && strings.Trim(t, "#") == ""
}
