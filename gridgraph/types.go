package gridgraph

import (
	"sync"

	"github.com/ungerik/go3d/vec3"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is one discrete grid location. All fields are fixed at construction;
// per-search bookkeeping is kept by the search, never on the cell.
type Cell struct {
	X, Y     int    // Coordinates within the grid
	Index    int    // Row-major index: Y*Width + X
	Value    int    // Original grid value at (X, Y)
	Walkable bool   // Value ≥ WalkableThreshold
	World    vec3.T // World position of the cell centre
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WalkableThreshold specifies the minimum cell value considered walkable.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize is the world-space edge length of one cell. Must be > 0.
	CellSize float32
	// Origin is the world position of the centre of cell (0,0).
	Origin vec3.T
}

// DefaultGridOptions returns a GridOptions with default settings:
// WalkableThreshold=1 (values ≥1 are walkable), Conn=Conn8, CellSize=1,
// Origin at the world origin.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkableThreshold: 1,
		Conn:              Conn8,
		CellSize:          1,
	}
}

// GridGraph is an immutable walkability grid.
// Width and Height define dimensions; cells are stored row-major.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height     int
	Conn              Connectivity
	WalkableThreshold int
	CellSize          float32
	Origin            vec3.T

	cells           []Cell
	neighborOffsets [][2]int

	regionsOnce sync.Once
	regions     []int // component label per cell, -1 when blocked
}
