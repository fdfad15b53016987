package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of walkable
// cells, according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.cells))
	var comps [][]int

	for i0 := range gg.cells {
		if !gg.cells[i0].Walkable || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] && gg.cells[vi].Walkable {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Region returns the component label of c, matching the position of its
// component in ConnectedComponents. Blocked cells report -1.
// The label table is built on first use.
func (gg *GridGraph) Region(c *Cell) int {
	gg.regionsOnce.Do(gg.labelRegions)
	return gg.regions[c.Index]
}

// SameRegion reports whether a walkable path between a and b can exist.
// Complexity: O(1) after the first call.
func (gg *GridGraph) SameRegion(a, b *Cell) bool {
	ra := gg.Region(a)
	return ra >= 0 && ra == gg.Region(b)
}

func (gg *GridGraph) labelRegions() {
	labels := make([]int, len(gg.cells))
	for i := range labels {
		labels[i] = -1
	}
	for label, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = label
		}
	}
	gg.regions = labels
}
