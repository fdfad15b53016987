package gridgraph

import (
	"math"

	"github.com/ungerik/go3d/vec3"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. The input is copied into the cells, so later changes
// to values do not affect the graph.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCellSize if opts.CellSize ≤ 0.
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
	if opts.CellSize <= 0 || math.IsNaN(float64(opts.CellSize)) {
		return nil, ErrBadCellSize
	}

	gg := &GridGraph{
		Width:             w,
		Height:            h,
		Conn:              opts.Conn,
		WalkableThreshold: opts.WalkableThreshold,
		CellSize:          opts.CellSize,
		Origin:            opts.Origin,
		cells:             make([]Cell, w*h),
		neighborOffsets:   offsets4,
	}
	if opts.Conn == Conn8 {
		gg.neighborOffsets = offsets8
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values[y][x]
			gg.cells[gg.index(x, y)] = Cell{
				X:        x,
				Y:        y,
				Index:    gg.index(x, y),
				Value:    v,
				Walkable: v >= opts.WalkableThreshold,
				World:    gg.WorldPosition(x, y),
			}
		}
	}

	return gg, nil
}

// From2D builds a grid with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Cell returns the cell at (x,y), or false when out of bounds.
func (gg *GridGraph) Cell(x, y int) (*Cell, bool) {
	if !gg.InBounds(x, y) {
		return nil, false
	}
	return &gg.cells[gg.index(x, y)], true
}

// CapacityHint returns the total number of cells, the upper bound on cells
// a search can hold in its open set at once.
func (gg *GridGraph) CapacityHint() int {
	return len(gg.cells)
}

// WorldPosition returns the world-space centre of grid cell (x,y).
// Coordinates outside the grid are extrapolated, not clamped.
func (gg *GridGraph) WorldPosition(x, y int) vec3.T {
	return vec3.T{
		gg.Origin[0] + float32(x)*gg.CellSize,
		gg.Origin[1] + float32(y)*gg.CellSize,
		gg.Origin[2],
	}
}

// CellAt resolves a world point to the nearest cell. Each axis is rounded to
// the closest cell centre and then clamped into the grid, so points outside
// the map resolve to the nearest border cell. The Z component is ignored.
// Complexity: O(1).
func (gg *GridGraph) CellAt(p vec3.T) *Cell {
	x := gg.axis(p[0]-gg.Origin[0], gg.Width)
	y := gg.axis(p[1]-gg.Origin[1], gg.Height)
	return &gg.cells[gg.index(x, y)]
}

// Neighbors returns the in-bounds cells adjacent to c under gg.Conn,
// walkable or not. Order follows NeighborOffsets.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		out = append(out, &gg.cells[gg.index(nx, ny)])
	}
	return out
}

// axis converts a world offset along one axis to a clamped cell coordinate.
func (gg *GridGraph) axis(offset float32, size int) int {
	f := math.Round(float64(offset / gg.CellSize))
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(size-1):
		return size - 1
	}
	return int(f)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
