// Package gridgraph treats a 2D grid of weighted cells as a search space for
// the astar engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are passable; the value is the terrain
//     weight paid when entering the cell. Other cells are walls ("water").
//   - Cell implements astar.Node; Neighbors implements astar.Enumerator.
//   - FindPath runs A* between two coordinates with an admissible heuristic.
//   - ConnectedComponents labels passable regions so unreachable targets are
//     rejected without searching.
//   - ToWeightedGraph exports the grid as a gonum weighted directed graph.
//
// Costs:
//
//   - Orthogonal step: 10 × weight of the destination cell.
//   - Diagonal step (Conn8 only): 14 × weight of the destination cell.
//   - Heuristic: Manhattan (Conn4) or octile (Conn8) distance in the same
//     units, scaled by the smallest passable weight. It never overestimates,
//     so FindPath returns minimum-cost routes.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - FindPath:            O(W×H×d × log(W×H×d)), Memory: O(W×H).
//   - ToWeightedGraph:     O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below one.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBlocked: the start or target cell is not passable.
//   - ErrNoPath: no route exists between the two cells.
//
// Thread safety:
//
//   - A GridGraph is immutable apart from the scores stored in its cells.
//   - FindPath may be called from several goroutines; calls on the same
//     GridGraph are serialized.
//   - An engine returned by Search mutates the shared cells while it runs, so
//     it must not overlap with another Search or FindPath on that GridGraph.
package gridgraph
