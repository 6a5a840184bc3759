package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellIndex indicates a requested cell index is invalid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrBadDigit indicates a non-digit character in digit input.
	ErrBadDigit = errors.New("gridgraph: grid rows must contain only digits")
	// ErrBadFactor indicates a tiling factor below one.
	ErrBadFactor = errors.New("gridgraph: tile factor must be at least 1")
	// ErrNoPath indicates no passable path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
