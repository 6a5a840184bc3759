package gridgraph

import "github.com/katalvlaran/amphipod/pqueue"

// cell is one frontier item of ShortestPath.
type cell struct {
	idx      int
	cost     int // g
	estimate int // f
}

func lessCell(a, b cell) bool {
	if a.estimate != b.estimate {
		return a.estimate < b.estimate
	}

	return a.cost > b.cost
}

// ShortestPath returns the cheapest route from src to dst as row-major
// indices (src first) and its cost. The cost counts every entered cell and
// excludes src itself.
//
// The frontier is ordered by cost plus a distance bound times the cheapest
// passable cell, so the first time dst is popped its cost is minimal.
// Complexity: O(W·H·d·log(W·H)), Memory: O(W·H).
func (gg *GridGraph) ShortestPath(src, dst int) ([]int, int, error) {
	n := gg.Width * gg.Height
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, 0, ErrCellIndex
	}
	if sx, sy := gg.Coordinate(src); !gg.Passable(sx, sy) {
		return nil, 0, ErrNoPath
	}
	if dx, dy := gg.Coordinate(dst); !gg.Passable(dx, dy) {
		return nil, 0, ErrNoPath
	}

	const unseen = -1
	best := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range best {
		best[i] = unseen
		prev[i] = unseen
	}
	best[src] = 0

	pq := pqueue.New(lessCell, n/4)
	pq.Push(cell{idx: src, estimate: gg.bound(src, dst)})
	for {
		cur, ok := pq.Pop()
		if !ok {
			return nil, 0, ErrNoPath
		}
		if done[cur.idx] {
			continue
		}
		done[cur.idx] = true
		if cur.idx == dst {
			return gg.trail(prev, src, dst), cur.cost, nil
		}

		x, y := gg.Coordinate(cur.idx)
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.InBounds(nx, ny) || !gg.Passable(nx, ny) {
				continue
			}
			ni := gg.Index(nx, ny)
			if done[ni] {
				continue
			}
			g := cur.cost + gg.CellValues[ny][nx]
			if best[ni] != unseen && best[ni] <= g {
				continue
			}
			best[ni] = g
			prev[ni] = cur.idx
			pq.Push(cell{idx: ni, cost: g, estimate: g + gg.bound(ni, dst)})
		}
	}
}

// bound is a lower bound on the cost from a to b: the step distance under
// the grid's connectivity times the cheapest passable cell.
func (gg *GridGraph) bound(a, b int) int {
	ax, ay := gg.Coordinate(a)
	bx, by := gg.Coordinate(b)
	dx, dy := abs(ax-bx), abs(ay-by)
	if gg.Conn == Conn8 {
		return max(dx, dy) * gg.minCost
	}

	return (dx + dy) * gg.minCost
}

// trail walks prev back from dst and returns the path in forward order.
func (gg *GridGraph) trail(prev []int, src, dst int) []int {
	var path []int
	for at := dst; at != src; at = prev[at] {
		path = append(path, at)
	}
	path = append(path, src)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
