package astar

import (
	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// retrace walks parent links from target back to start and returns the
// cells in start→target order, start excluded.
func retrace(start, target *node) []*gridgraph.Cell {
	var cells []*gridgraph.Cell
	for n := target; n != start; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// simplify keeps only the cells where the grid direction changes, plus the
// last cell. A straight run, orthogonal or diagonal, collapses into the
// single waypoint at its end. The caller is assumed to stand on start.
func simplify(start *gridgraph.Cell, cells []*gridgraph.Cell) []vec3.T {
	waypoints := make([]vec3.T, 0, len(cells))
	prev := start
	for i, c := range cells {
		if i == len(cells)-1 || direction(prev, c) != direction(c, cells[i+1]) {
			waypoints = append(waypoints, c.World)
		}
		prev = c
	}
	return waypoints
}

func direction(from, to *gridgraph.Cell) [2]int {
	return [2]int{to.X - from.X, to.Y - from.Y}
}
