package gridgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wayfind/astar"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold if
// opts.LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.LandThreshold)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	values2 := make([][]int, h)
	for y := 0; y < h; y++ {
		values2[y] = make([]int, w)
		copy(values2[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      values2,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           make([]*Cell, w*h),
		neighborOffsets: offsets,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := &Cell{X: x, Y: y, Value: values2[y][x], grid: gg}
			gg.cells[gg.index(x, y)] = c
			if c.Passable() && (gg.minWeight == 0 || c.Value < gg.minWeight) {
				gg.minWeight = c.Value
			}
		}
	}
	gg.regions = gg.label()

	return gg, nil
}

// From2D is NewGridGraph with LandThreshold=1 and the given connectivity.
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
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Cell returns the cell at (x,y), or nil when out of bounds.
func (gg *GridGraph) Cell(x, y int) *Cell {
	if !gg.InBounds(x, y) {
		return nil
	}

	return gg.cells[gg.index(x, y)]
}

// Reset zeroes the scores of every cell.
func (gg *GridGraph) Reset() {
	for _, c := range gg.cells {
		c.Reset()
	}
}

// Neighbors returns an enumerator over the passable neighbors of a cell,
// in the fixed order of NeighborOffsets.
func (gg *GridGraph) Neighbors() astar.Enumerator[*Cell] {
	return &cellEnumerator{gg: gg, pos: len(gg.neighborOffsets)}
}

// estimate is the admissible step-count heuristic scaled by the lightest terrain.
func (gg *GridGraph) estimate(from, to *Cell) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	if gg.Conn == Conn8 {
		lo, hi := min(dx, dy), max(dx, dy)

		return (diagonalCost*lo + straightCost*(hi-lo)) * gg.minWeight
	}

	return straightCost * (dx + dy) * gg.minWeight
}

// ToWeightedGraph exports the passable cells as a gonum weighted directed graph.
// Node IDs are row-major indices; edge u→v weighs u.DistanceTo(v).
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToWeightedGraph() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, c := range gg.cells {
		if c.Passable() {
			g.AddNode(simple.Node(c.Key()))
		}
	}
	for _, c := range gg.cells {
		if !c.Passable() {
			continue
		}
		for _, d := range gg.neighborOffsets {
			nb := gg.Cell(c.X+d[0], c.Y+d[1])
			if nb == nil || !nb.Passable() {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(c.Key()), simple.Node(nb.Key()), float64(c.DistanceTo(nb))))
		}
	}

	return g
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

// cellEnumerator walks the offsets of the current cell lazily, skipping
// walls and out-of-bounds positions.
type cellEnumerator struct {
	gg  *GridGraph
	x   int
	y   int
	pos int
}

func (e *cellEnumerator) Begin(current *Cell) {
	e.x, e.y, e.pos = current.X, current.Y, -1
	e.Advance()
}

func (e *cellEnumerator) HasNext() bool { return e.pos < len(e.gg.neighborOffsets) }

func (e *cellEnumerator) Current() *Cell {
	d := e.gg.neighborOffsets[e.pos]

	return e.gg.Cell(e.x+d[0], e.y+d[1])
}

func (e *cellEnumerator) Advance() {
	for e.pos++; e.pos < len(e.gg.neighborOffsets); e.pos++ {
		d := e.gg.neighborOffsets[e.pos]
		if c := e.gg.Cell(e.x+d[0], e.y+d[1]); c != nil && c.Passable() {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
