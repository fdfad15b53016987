package astar

import (
	"cmp"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// node is the per-search record of one cell. Records live in the
// Pathfinder's arena at cell.Index and are only trusted when stamp equals
// the current search generation.
type node struct {
	cell   *gridgraph.Cell
	parent *node // back-reference within the same search only
	g, h   int
	slot   int // owned by the open set
	stamp  uint32
	closed bool
}

func (n *node) f() int { return n.g + n.h }

// Compare orders by total cost ascending, then by estimate ascending, so
// that on equal totals the cell believed closer to the target goes first.
func (n *node) Compare(o *node) int {
	if c := cmp.Compare(n.f(), o.f()); c != 0 {
		return c
	}
	return cmp.Compare(n.h, o.h)
}

func (n *node) HeapIndex() int     { return n.slot }
func (n *node) SetHeapIndex(i int) { n.slot = i }
