// Package astar_test covers search results, failure reporting, budgeted
// stepping and state isolation between consecutive searches.
package astar_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// openGrid returns an all-walkable w×h grid with unit cells.
func openGrid(t testing.TB, w, h int) *gridgraph.GridGraph {
	t.Helper()
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

func layout(t testing.TB, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.Layout{Rows: rows}.Build()
	require.NoError(t, err)
	return gg
}

func newPathfinder(t testing.TB, g astar.Grid, opts ...astar.Option) *astar.Pathfinder {
	t.Helper()
	pf, err := astar.NewPathfinder(g, opts...)
	require.NoError(t, err)
	return pf
}

func pt(x, y float32) vec3.T { return vec3.T{x, y, 0} }

func search(t testing.TB, pf *astar.Pathfinder, from, to vec3.T) (*astar.Search, astar.Result) {
	t.Helper()
	s, err := pf.Start(from, to)
	require.NoError(t, err)
	return s, s.Run()
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

// bareGrid hides every method but the Grid interface.
type bareGrid struct{ astar.Grid }

type emptyGrid struct{ astar.Grid }

func (emptyGrid) CapacityHint() int { return 0 }

func TestNewPathfinder_Errors(t *testing.T) {
	_, err := astar.NewPathfinder(nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	_, err = astar.NewPathfinder(emptyGrid{})
	assert.ErrorIs(t, err, astar.ErrBadCapacity)

	_, err = astar.NewPathfinder(bareGrid{openGrid(t, 2, 2)}, astar.WithRegionCheck())
	assert.ErrorIs(t, err, astar.ErrNoRegionChecker)

	assert.Panics(t, func() { astar.WithExpansionBudget(-1) })
	assert.Panics(t, func() { astar.WithHeuristic(nil) })
}

// ------------------------------------------------------------------------
// 2. Successful searches
// ------------------------------------------------------------------------

// TestFindPath_Diagonal crosses a 5×5 open grid corner to corner: a single
// diagonal run, so one waypoint at the target and cost 4×14.
func TestFindPath_Diagonal(t *testing.T) {
	gg := openGrid(t, 5, 5)
	pf := newPathfinder(t, gg)

	s, r := search(t, pf, pt(0, 0), pt(4, 4))
	require.True(t, r.Found)
	require.NoError(t, r.Err)
	assert.Equal(t, astar.Succeeded, s.State())
	assert.Equal(t, []vec3.T{pt(4, 4)}, r.Waypoints)
	assert.Equal(t, 56, r.Cost)
	assert.Equal(t, 5, r.Expanded, "a perfect heuristic only expands the diagonal")

	wps, ok := pf.FindPath(pt(0, 0), pt(4, 4))
	assert.True(t, ok)
	assert.Equal(t, r.Waypoints, wps)
}

// TestFindPath_Straight checks an orthogonal run collapses to its end.
func TestFindPath_Straight(t *testing.T) {
	pf := newPathfinder(t, openGrid(t, 6, 1))

	_, r := search(t, pf, pt(0, 0), pt(5, 0))
	require.True(t, r.Found)
	assert.Equal(t, []vec3.T{pt(5, 0)}, r.Waypoints)
	assert.Equal(t, 50, r.Cost)
}

// TestFindPath_Turns routes through the single gap of a wall:
//
//	S . . . .
//	# # # # .
//	T . . . .
//
// The only shortest route is E,E,E,SE,SW,W,W,W; waypoints sit at each turn.
func TestFindPath_Turns(t *testing.T) {
	gg := layout(t,
		".....",
		"####.",
		".....",
	)
	pf := newPathfinder(t, gg)

	_, r := search(t, pf, pt(0, 0), pt(0, 2))
	require.True(t, r.Found)
	assert.Equal(t, []vec3.T{pt(3, 0), pt(4, 1), pt(3, 2), pt(0, 2)}, r.Waypoints)
	assert.Equal(t, 3*10+14+14+3*10, r.Cost)
}

// TestFindPath_SameCell needs no movement at all.
func TestFindPath_SameCell(t *testing.T) {
	pf := newPathfinder(t, openGrid(t, 3, 3))

	s, r := search(t, pf, pt(1, 1), pt(1.2, 0.9))
	require.True(t, r.Found)
	assert.Equal(t, astar.Succeeded, s.State())
	assert.Empty(t, r.Waypoints)
	assert.Zero(t, r.Cost)
}

// TestFindPath_WorldSpace uses a scaled, offset grid; waypoints come back
// as cell centres in world space.
func TestFindPath_WorldSpace(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = 2
	opts.Origin = vec3.T{-10, 4, 1}
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{1, 1, 1},
	}, opts)
	require.NoError(t, err)
	pf := newPathfinder(t, gg)

	wps, ok := pf.FindPath(vec3.T{-9.6, 4.2, 0}, vec3.T{-6.3, 6.4, 0})
	require.True(t, ok)
	// (0,0) → (1,1) diagonal, then (2,1) east.
	assert.Equal(t, []vec3.T{{-8, 6, 1}, {-6, 6, 1}}, wps)
}

// ------------------------------------------------------------------------
// 3. Failures
// ------------------------------------------------------------------------

// TestFindPath_InvalidEndpoints rejects unwalkable start or target without
// expanding anything.
func TestFindPath_InvalidEndpoints(t *testing.T) {
	gg := layout(t,
		"...",
		".#.",
		"...",
	)
	cases := []struct {
		name     string
		from, to vec3.T
	}{
		{"TargetBlocked", pt(0, 0), pt(1, 1)},
		{"StartBlocked", pt(1, 1), pt(2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pf := newPathfinder(t, gg)
			var r astar.Result
			var s *astar.Search
			require.NotPanics(t, func() { s, r = search(t, pf, tc.from, tc.to) })

			assert.False(t, r.Found)
			assert.Empty(t, r.Waypoints)
			assert.Zero(t, r.Expanded)
			assert.ErrorIs(t, r.Err, astar.ErrInvalidEndpoint)
			assert.Equal(t, astar.InvalidEndpoints, s.State())
			assert.True(t, s.Step(), "terminal searches stay terminal")
		})
	}
}

// enclosed walls off the bottom-right corner of a 5×5 grid.
var enclosed = []string{
	".....",
	".....",
	".....",
	"...##",
	"...#.",
}

// TestFindPath_Unreachable exhausts every reachable cell before giving up.
func TestFindPath_Unreachable(t *testing.T) {
	pf := newPathfinder(t, layout(t, enclosed...))

	s, r := search(t, pf, pt(0, 0), pt(4, 4))
	assert.False(t, r.Found)
	assert.Empty(t, r.Waypoints)
	assert.ErrorIs(t, r.Err, astar.ErrSearchExhausted)
	assert.Equal(t, astar.Failed, s.State())
	assert.Equal(t, 25-3-1, r.Expanded)
}

// TestFindPath_RegionCheck reaches the same verdict without expanding.
func TestFindPath_RegionCheck(t *testing.T) {
	pf := newPathfinder(t, layout(t, enclosed...), astar.WithRegionCheck())

	s, r := search(t, pf, pt(0, 0), pt(4, 4))
	assert.False(t, r.Found)
	assert.ErrorIs(t, r.Err, astar.ErrSearchExhausted)
	assert.Equal(t, astar.Failed, s.State())
	assert.Zero(t, r.Expanded)

	// Connected targets still search normally.
	_, r = search(t, pf, pt(0, 0), pt(2, 4))
	assert.True(t, r.Found)
}

// ------------------------------------------------------------------------
// 4. Suspension and single flight
// ------------------------------------------------------------------------

// TestStep_Budget spreads a search over several steps and expects the same
// answer as an unbounded run.
func TestStep_Budget(t *testing.T) {
	gg := randomMaze(t, 40, 3)
	from, to := pt(0, 0), pt(39, 39)

	_, want := search(t, newPathfinder(t, gg), from, to)

	pf := newPathfinder(t, gg, astar.WithExpansionBudget(4))
	s, err := pf.Start(from, to)
	require.NoError(t, err)
	steps := 0
	for !s.Step() {
		steps++
		assert.Equal(t, astar.Searching, s.State())
		assert.Zero(t, s.Result(), "no result before the search ends")
	}
	assert.Greater(t, steps, 1)
	assert.Equal(t, want, s.Result())
}

// TestStart_SupersedesUnfinished abandons a budgeted search after one Step;
// the next search on the same Pathfinder starts from scratch.
func TestStart_SupersedesUnfinished(t *testing.T) {
	pf := newPathfinder(t, openGrid(t, 20, 20), astar.WithExpansionBudget(1))
	require.Equal(t, 1, pf.Options().ExpansionBudget)

	first, err := pf.Start(pt(0, 0), pt(19, 19))
	require.NoError(t, err)
	require.False(t, first.Step())

	second, err := pf.Start(pt(0, 0), pt(5, 5))
	require.NoError(t, err)

	assert.True(t, first.Done())
	assert.Equal(t, astar.Failed, first.State())
	assert.True(t, first.Step(), "a superseded search stays terminal")
	assert.ErrorIs(t, first.Result().Err, astar.ErrSuperseded)
	assert.False(t, first.Result().Found)
	assert.Empty(t, first.Result().Waypoints)

	r := second.Run()
	require.True(t, r.Found)
	assert.Equal(t, []vec3.T{pt(5, 5)}, r.Waypoints)
	assert.Equal(t, 5*astar.DiagonalCost, r.Cost)
}

// TestFindPath_AfterAbandonedSearch: a dropped Search must not make a
// reachable target look unreachable.
func TestFindPath_AfterAbandonedSearch(t *testing.T) {
	pf := newPathfinder(t, openGrid(t, 20, 20), astar.WithExpansionBudget(1))

	abandoned, err := pf.Start(pt(0, 0), pt(19, 19))
	require.NoError(t, err)
	require.False(t, abandoned.Step())

	wps, ok := pf.FindPath(pt(0, 0), pt(1, 0))
	require.True(t, ok)
	assert.Equal(t, []vec3.T{pt(1, 0)}, wps)
}

// TestStart_AfterConclusion leaves a concluded search untouched.
func TestStart_AfterConclusion(t *testing.T) {
	pf := newPathfinder(t, openGrid(t, 5, 5))

	first, err := pf.Start(pt(0, 0), pt(4, 0))
	require.NoError(t, err)
	want := first.Run()
	require.True(t, want.Found)

	_, ok := pf.FindPath(pt(0, 0), pt(0, 4))
	require.True(t, ok)
	assert.Equal(t, astar.Succeeded, first.State())
	assert.Equal(t, want, first.Result())
}

// ------------------------------------------------------------------------
// 5. Determinism, isolation and optimality
// ------------------------------------------------------------------------

// randomMaze blocks about a quarter of the cells but keeps the corners open.
func randomMaze(t testing.TB, n int, seed int64) *gridgraph.GridGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if rng.Intn(4) != 0 {
				values[y][x] = 1
			}
		}
	}
	for _, c := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		values[c[1]][c[0]] = 1
		values[n-1-c[1]][n-1-c[0]] = 1
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

// TestFindPath_Deterministic repeats a query, with unrelated searches in
// between that leave their own costs behind, and expects identical output
// from the reused pathfinder and from a fresh one.
func TestFindPath_Deterministic(t *testing.T) {
	gg := randomMaze(t, 30, 11)
	pf := newPathfinder(t, gg)
	from, to := pt(0, 0), pt(29, 29)

	_, first := search(t, pf, from, to)
	for i := 0; i < 5; i++ {
		_, _ = search(t, pf, pt(float32(29-i), 0), pt(float32(i), 29))
		_, again := search(t, pf, from, to)
		require.Equal(t, first, again)
	}

	_, fresh := search(t, newPathfinder(t, gg), from, to)
	assert.Equal(t, first, fresh)
}

// TestFindPath_MatchesUniformCost compares A* against the same search with
// the zero heuristic (Dijkstra) on many random queries: reachability and
// path cost must agree.
func TestFindPath_MatchesUniformCost(t *testing.T) {
	const n = 25
	gg := randomMaze(t, n, 5)
	guided := newPathfinder(t, gg)
	uniform := newPathfinder(t, gg, astar.WithHeuristic(astar.Zero))
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		from := pt(float32(rng.Intn(n)), float32(rng.Intn(n)))
		to := pt(float32(rng.Intn(n)), float32(rng.Intn(n)))

		_, a := search(t, guided, from, to)
		_, d := search(t, uniform, from, to)
		require.Equal(t, d.Found, a.Found, "query %d %v→%v", i, from, to)
		require.Equal(t, d.Cost, a.Cost, "query %d %v→%v", i, from, to)
		require.LessOrEqual(t, a.Expanded, d.Expanded)
		if a.Err != nil {
			require.True(t, errors.Is(a.Err, astar.ErrInvalidEndpoint) || errors.Is(a.Err, astar.ErrSearchExhausted))
		}
	}
}
