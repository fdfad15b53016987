package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellSize indicates a zero or negative world-space cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive")
	// ErrBadConnectivity indicates a layout asked for connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be 4 or 8")
	// ErrBadOrigin indicates a layout origin with more than three components.
	ErrBadOrigin = errors.New("gridgraph: origin must have at most three components")
	// ErrBadLayoutRune indicates a layout row contains a rune other than '.' or '#'.
	ErrBadLayoutRune = errors.New("gridgraph: layout rows may only contain '.' and '#'")
)
