package astar

import (
	"errors"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates NewPathfinder was given a nil Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadCapacity indicates the grid reported a non-positive CapacityHint.
	ErrBadCapacity = errors.New("astar: grid capacity must be positive")

	// ErrNoRegionChecker indicates WithRegionCheck was requested for a grid
	// that does not implement RegionChecker.
	ErrNoRegionChecker = errors.New("astar: grid does not implement RegionChecker")

	// ErrNilHeuristic indicates WithHeuristic was called with nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadBudget indicates a negative expansion budget.
	ErrBadBudget = errors.New("astar: expansion budget must be non-negative")

	// ErrSuperseded is reported by a Search that was abandoned because
	// Start opened a newer one on the same Pathfinder.
	ErrSuperseded = errors.New("astar: search superseded by a newer one")

	// ErrInvalidEndpoint indicates the start or target cell is not walkable.
	ErrInvalidEndpoint = errors.New("astar: start or target is not walkable")

	// ErrSearchExhausted indicates the target cannot be reached from start.
	ErrSearchExhausted = errors.New("astar: target unreachable")
)

// Grid is the walkability grid a Pathfinder searches.
//
// Every cell handed out must be long-lived and satisfy
// 0 ≤ Index < CapacityHint(). Neighbors returns in-bounds adjacent cells,
// walkable or not, in any order. *gridgraph.GridGraph implements Grid.
type Grid interface {
	CellAt(p vec3.T) *gridgraph.Cell
	Neighbors(c *gridgraph.Cell) []*gridgraph.Cell
	CapacityHint() int
}

// RegionChecker is implemented by grids that can tell in O(1) whether two
// cells are connected. Used by WithRegionCheck.
type RegionChecker interface {
	SameRegion(a, b *gridgraph.Cell) bool
}

// Heuristic estimates the cost between two cells in step-cost units.
// It must never overestimate, or returned paths may not be shortest.
type Heuristic func(from, to *gridgraph.Cell) int

// Options configures a Pathfinder.
//
// Heuristic       – cost estimate to the target. Default Octile.
// ExpansionBudget – maximum cells popped per Search.Step; 0 means unbounded.
// RegionCheck     – reject targets outside the start's region before searching.
type Options struct {
	Heuristic       Heuristic
	ExpansionBudget int
	RegionCheck     bool
}

// Option represents a functional option for configuring a Pathfinder.
type Option func(*Options)

// DefaultOptions returns the octile heuristic, an unbounded step and no
// region check.
func DefaultOptions() Options {
	return Options{
		Heuristic:       Octile,
		ExpansionBudget: 0,
		RegionCheck:     false,
	}
}

// WithHeuristic replaces the octile heuristic. Passing Zero turns the
// search into uniform-cost search (Dijkstra). Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithExpansionBudget caps the cells popped per Search.Step, so a host loop
// can suspend a long search between ticks. Zero disables the cap.
// Panics on negative n.
func WithExpansionBudget(n int) Option {
	if n < 0 {
		panic(ErrBadBudget.Error())
	}
	return func(o *Options) {
		o.ExpansionBudget = n
	}
}

// WithRegionCheck makes Start fail fast with ErrSearchExhausted when the
// grid's RegionChecker says start and target are disconnected.
func WithRegionCheck() Option {
	return func(o *Options) {
		o.RegionCheck = true
	}
}

// State is the lifecycle position of a Search.
type State int

const (
	// Idle is the zero State of a Search that was never started.
	Idle State = iota
	// Searching means the open set may still hold cells to expand.
	Searching
	// Succeeded means the target was reached.
	Succeeded
	// Failed means the open set emptied without reaching the target.
	Failed
	// InvalidEndpoints means start or target was not walkable.
	InvalidEndpoints
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case InvalidEndpoints:
		return "invalid-endpoints"
	}
	return "unknown"
}

// Terminal reports whether no further Step can change the state.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed || s == InvalidEndpoints
}

// Result is the outcome of a finished Search.
type Result struct {
	Waypoints []vec3.T // Simplified path, start excluded; empty unless Found
	Found     bool     // Target reached
	Cost      int      // Accumulated cost at the target (10/14 units)
	Expanded  int      // Cells popped from the open set
	Err       error    // nil when Found; ErrInvalidEndpoint or ErrSearchExhausted otherwise
}
