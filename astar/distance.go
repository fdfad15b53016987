package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Step costs in fixed-point units: 14/10 approximates √2.
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Octile returns the cost of the cheapest 8-connected route between a and b
// on an open grid: DiagonalCost per diagonal step, StraightCost per
// remaining straight step. It is both the step cost between neighbours and
// the default heuristic.
func Octile(a, b *gridgraph.Cell) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return DiagonalCost*lo + StraightCost*(hi-lo)
}

// Zero is the trivial heuristic.
func Zero(_, _ *gridgraph.Cell) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
