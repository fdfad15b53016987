package astar

import (
	"fmt"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pqueue"
)

// Pathfinder runs A* searches over one Grid, one search at a time.
// The open set and the record arena are allocated once and reused.
type Pathfinder struct {
	grid    Grid
	regions RegionChecker // nil unless Options.RegionCheck
	options Options

	nodes      []node
	open       *pqueue.Heap[*node]
	generation uint32
	active     *Search
}

// NewPathfinder builds a Pathfinder for grid.
//
// Validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. grid.CapacityHint() must be positive (ErrBadCapacity).
//  3. with WithRegionCheck, grid must implement RegionChecker (ErrNoRegionChecker).
//
// Complexity: O(W×H) to allocate the arena.
func NewPathfinder(grid Grid, opts ...Option) (*Pathfinder, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := grid.CapacityHint()
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, n)
	}

	pf := &Pathfinder{
		grid:    grid,
		options: cfg,
		nodes:   make([]node, n),
		open:    pqueue.New[*node](n),
	}
	if cfg.RegionCheck {
		rc, ok := grid.(RegionChecker)
		if !ok {
			return nil, ErrNoRegionChecker
		}
		pf.regions = rc
	}

	return pf, nil
}

// Options returns the configuration the Pathfinder was built with.
func (pf *Pathfinder) Options() Options { return pf.options }

// Start opens a search from the cell containing start to the cell
// containing target. The returned Search is already past its endpoint
// checks: if either endpoint is unwalkable it is terminal with
// InvalidEndpoints, otherwise it is Searching with only the start cell open.
//
// A previous Search of this Pathfinder that has not concluded is abandoned:
// it becomes Failed with ErrSuperseded and its Step returns true from then
// on. The returned error is always nil; the signature matches broker.Finder.
func (pf *Pathfinder) Start(start, target vec3.T) (*Search, error) {
	if prev := pf.active; prev != nil && !prev.Done() {
		prev.fail(Failed, fmt.Errorf("%w after %d cells", ErrSuperseded, prev.expanded))
	}
	pf.nextGeneration()
	pf.open.Clear()

	s := &Search{pf: pf, state: Searching}
	pf.active = s

	sc, tc := pf.grid.CellAt(start), pf.grid.CellAt(target)
	sn, okStart := pf.record(sc)
	tn, okTarget := pf.record(tc)
	if !okStart || !okTarget || !sc.Walkable || !tc.Walkable {
		s.fail(InvalidEndpoints, fmt.Errorf("%w: start %s, target %s", ErrInvalidEndpoint, describe(sc), describe(tc)))
		return s, nil
	}
	s.start, s.target = sn, tn

	if pf.regions != nil && !pf.regions.SameRegion(sc, tc) {
		s.fail(Failed, fmt.Errorf("%w: %s and %s lie in different regions", ErrSearchExhausted, describe(sc), describe(tc)))
		return s, nil
	}

	sn.h = pf.options.Heuristic(sc, tc)
	pf.open.Push(sn)

	return s, nil
}

// FindPath runs a complete search and returns its waypoints and whether the
// target was reached. It is Start followed by Run.
func (pf *Pathfinder) FindPath(start, target vec3.T) ([]vec3.T, bool) {
	s, err := pf.Start(start, target)
	if err != nil {
		return nil, false
	}
	r := s.Run()
	return r.Waypoints, r.Found
}

// nextGeneration invalidates every record in the arena.
func (pf *Pathfinder) nextGeneration() {
	pf.generation++
	if pf.generation == 0 {
		// Wrapped: old stamps could collide with new generations.
		for i := range pf.nodes {
			pf.nodes[i] = node{}
		}
		pf.generation = 1
	}
}

// record returns the current-generation record for c, resetting it if it
// still carries state from an earlier search. It reports false for cells
// the arena cannot hold.
func (pf *Pathfinder) record(c *gridgraph.Cell) (*node, bool) {
	if c == nil || c.Index < 0 || c.Index >= len(pf.nodes) {
		return nil, false
	}
	n := &pf.nodes[c.Index]
	if n.stamp != pf.generation {
		*n = node{cell: c, slot: -1, stamp: pf.generation}
	}
	return n, true
}

// Search is one A* run. Obtain it from Pathfinder.Start; drive it with Step
// or Run. A Search is not safe for concurrent use.
type Search struct {
	pf            *Pathfinder
	start, target *node
	state         State
	expanded      int
	result        Result
}

// State returns the current lifecycle state.
func (s *Search) State() State { return s.state }

// Done reports whether the search reached a terminal state.
func (s *Search) Done() bool { return s.state.Terminal() }

// Result returns the outcome. It is the zero Result until Done.
func (s *Search) Result() Result { return s.result }

// Run steps the search to completion and returns its Result.
func (s *Search) Run() Result {
	for !s.Step() {
	}
	return s.result
}

// Step expands up to Options.ExpansionBudget cells (all of them when the
// budget is zero) and reports whether the search is now terminal.
// Calling Step on a terminal search is a no-op that returns true.
func (s *Search) Step() bool {
	if s.Done() {
		return true
	}
	pf := s.pf
	budget := pf.options.ExpansionBudget

	for popped := 0; budget == 0 || popped < budget; popped++ {
		current, ok := pf.open.Pop()
		if !ok {
			s.fail(Failed, fmt.Errorf("%w: open set exhausted after %d cells", ErrSearchExhausted, s.expanded))
			return true
		}
		current.closed = true
		s.expanded++

		if current == s.target {
			s.succeed()
			return true
		}
		s.relax(current)
	}

	return false
}

// relax pushes or improves every walkable, unfinished neighbour of current.
func (s *Search) relax(current *node) {
	pf := s.pf
	for _, nc := range pf.grid.Neighbors(current.cell) {
		if nc == nil || !nc.Walkable {
			continue
		}
		nb, ok := pf.record(nc)
		if !ok || nb.closed {
			continue
		}
		g := current.g + Octile(current.cell, nc)

		switch {
		case !pf.open.Contains(nb):
			nb.g = g
			nb.h = pf.options.Heuristic(nc, s.target.cell)
			nb.parent = current
			pf.open.Push(nb)
		case g < nb.g:
			nb.g = g
			nb.parent = current
			pf.open.DecreaseKey(nb)
		}
	}
}

func (s *Search) succeed() {
	s.state = Succeeded
	s.result = Result{
		Waypoints: simplify(s.start.cell, retrace(s.start, s.target)),
		Found:     true,
		Cost:      s.target.g,
		Expanded:  s.expanded,
	}
}

func (s *Search) fail(state State, err error) {
	s.state = state
	s.result = Result{
		Expanded: s.expanded,
		Err:      err,
	}
}

func describe(c *gridgraph.Cell) string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
