package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	var comps [][]int
	for i, label := range gg.regions {
		if label == len(comps) {
			comps = append(comps, gg.bfsOrder(i))
		}
	}

	return comps
}

// Region returns the component label of (x,y), or -1 for walls and
// out-of-bounds coordinates. Two cells are mutually reachable iff their
// labels are equal and non-negative.
func (gg *GridGraph) Region(x, y int) int {
	if !gg.InBounds(x, y) {
		return -1
	}

	return gg.regions[gg.index(x, y)]
}

// label assigns a component label to every cell; walls get -1.
// Labels are assigned in row-major order of each component's first cell.
func (gg *GridGraph) label() []int {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	for i, c := range gg.cells {
		if !c.Passable() || labels[i] >= 0 {
			continue
		}
		for _, u := range gg.bfsOrder(i) {
			labels[u] = next
		}
		next++
	}

	return labels
}

// bfsOrder collects the component containing cell index i0 in BFS order.
func (gg *GridGraph) bfsOrder(i0 int) []int {
	seen := map[int]bool{i0: true}
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			v := gg.Cell(ux+d[0], uy+d[1])
			if v == nil || !v.Passable() {
				continue
			}
			vi := v.Key()
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
