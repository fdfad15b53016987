// Package gridgraph treats a 2D walkability grid as a graph of cells and
// maps it to and from continuous world space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; values ≥ WalkableThreshold
//     are walkable, everything else blocks movement.
//   - Every cell is a long-lived *Cell with fixed grid coordinates, a
//     row-major Index and the world position of its centre.
//   - CellAt resolves a world point to the nearest cell (clamped to bounds),
//     Neighbors enumerates 4- or 8-connected in-bounds cells.
//   - ConnectedComponents / Region / SameRegion label walkable "islands", so
//     a pathfinder can reject an unreachable target up front.
//   - Layout loads a grid from YAML (see ParseLayout, LoadLayout).
//
// Why:
//
//   - Game maps: navigation grids for actors moving in world space.
//   - Tooling: author walkability as ASCII rows in a YAML file.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - CellAt, Cell:        O(1).
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Region, SameRegion:  O(W×H×d) once, O(1) afterwards.
//
// Options:
//
//   - GridOptions.WalkableThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize: world-space edge length of one cell.
//   - GridOptions.Origin: world position of the centre of cell (0,0).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrBadConnectivity: layout connectivity other than 4 or 8.
//   - ErrBadOrigin: layout origin with more than three components.
//   - ErrBadLayoutRune: layout row contains an unknown rune.
//
// A GridGraph is immutable once built and safe for concurrent readers.
package gridgraph
