package gridgraph

import (
	"sync"

	"github.com/katalvlaran/wayfind/astar"
)

// Step costs in tenths, so diagonal ≈ √2 stays integral.
const (
	straightCost = 10
	diagonalCost = 14
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a single grid cell and an astar.Node. Its key is the row-major index.
type Cell struct {
	astar.Scores[int]

	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)

	grid *GridGraph
}

// Key implements astar.Node.
func (c *Cell) Key() int { return c.grid.index(c.X, c.Y) }

// Passable reports whether the cell can be entered.
func (c *Cell) Passable() bool { return c.Value >= c.grid.LandThreshold }

// DistanceTo implements astar.Node: step cost times the weight of other.
func (c *Cell) DistanceTo(other *Cell) int {
	if c.X != other.X && c.Y != other.Y {
		return diagonalCost * other.Value
	}

	return straightCost * other.Value
}

// UpdateHeuristic implements astar.Node.
func (c *Cell) UpdateHeuristic(target *Cell) { c.SetH(c.grid.estimate(c, target)) }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. Apart from cell scores it is
// immutable once built. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	cells           []*Cell // row-major
	minWeight       int     // smallest passable value, 0 if none
	regions         []int   // component label per cell, -1 for walls
	neighborOffsets [][2]int
	mu              sync.Mutex // held by FindPath while cell scores are in use
}

// Route is the result of FindPath.
type Route struct {
	// Cells lists the visited coordinates from start to target inclusive.
	Cells [][2]int
	// Cost is the total cost in tenths of a unit step.
	Cost int
	// Expanded is the number of cells the search closed.
	Expanded int
}
