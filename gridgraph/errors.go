package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below one, which would make
	// zero-weight cells passable and break the heuristic.
	ErrBadThreshold = errors.New("gridgraph: land threshold must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlocked indicates the start or target cell is not passable.
	ErrBlocked = errors.New("gridgraph: cell is not passable")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
