// Package gridgraph treats a 2D grid of cell costs as a weighted graph and
// finds minimum-cost paths across it with A*.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Entering a cell costs its
//     value; cells below WallThreshold are impassable.
//   - ShortestPath runs A* on the shared pqueue frontier with an admissible
//     distance bound (Manhattan for Conn4, Chebyshev for Conn8) scaled by the
//     cheapest passable cell.
//   - Tile repeats the grid factor×factor times, raising values by the tile's
//     row+column offset and wrapping 9 back to 1 (the "risk map" expansion).
//   - FromDigits reads a grid of single-digit rows.
//
// Complexity:
//
//   - ShortestPath: O(W·H·d·log(W·H)), Memory: O(W·H)  (d = 4 or 8).
//   - Tile:         O(factor²·W·H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellIndex: a source or target index outside the grid.
//   - ErrBadDigit: FromDigits met a non-digit.
//   - ErrBadFactor: Tile factor below 1.
//   - ErrNoPath: no passable route joins source and target.
package gridgraph
