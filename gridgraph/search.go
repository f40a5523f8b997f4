package gridgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wayfind/astar"
)

// Search prepares an A* engine from cell from to cell to without running it,
// for callers that want to step the search themselves. Cell scores are reset.
// The engine works on the grid's own cells, so it must not overlap with any
// other Search or FindPath on the same GridGraph.
//
// Returns ErrOutOfBounds or ErrBlocked for invalid endpoints.
func (gg *GridGraph) Search(from, to [2]int, beam astar.BeamFilter[int, int, *Cell], opts ...astar.Option[*Cell]) (*astar.Engine[int, int, *Cell], error) {
	start, err := gg.endpoint(from)
	if err != nil {
		return nil, err
	}
	target, err := gg.endpoint(to)
	if err != nil {
		return nil, err
	}
	gg.Reset()

	return astar.New[int, int](start, target, astar.KeyIs[int, *Cell](target.Key()), gg.Neighbors(), beam, opts...), nil
}

// FindPath returns a minimum-cost route between two coordinates.
//
// Cells in different components are rejected with ErrNoPath before any search
// runs. Cancellation of ctx is checked between expansions. Concurrent calls
// on one GridGraph are serialized.
// Complexity: O(W×H×d × log(W×H×d)) time, O(W×H) memory.
func (gg *GridGraph) FindPath(ctx context.Context, from, to [2]int, opts ...astar.Option[*Cell]) (Route, error) {
	if _, err := gg.endpoint(from); err != nil {
		return Route{}, err
	}
	if _, err := gg.endpoint(to); err != nil {
		return Route{}, err
	}
	if gg.Region(from[0], from[1]) != gg.Region(to[0], to[1]) {
		return Route{}, fmt.Errorf("%w: %v and %v are in different regions", ErrNoPath, from, to)
	}

	gg.mu.Lock()
	defer gg.mu.Unlock()
	eng, err := gg.Search(from, to, nil, opts...)
	if err != nil {
		return Route{}, err
	}
	found, err := eng.Run(ctx)
	if err != nil {
		return Route{}, fmt.Errorf("gridgraph: route %v→%v: %w", from, to, err)
	}
	if !found {
		return Route{}, fmt.Errorf("%w: %v→%v", ErrNoPath, from, to)
	}

	keys := eng.PathKeys()
	route := Route{
		Cells:    make([][2]int, len(keys)),
		Cost:     eng.CurrentNode().G(),
		Expanded: eng.Expanded(),
	}
	for i, k := range keys {
		x, y := gg.Coordinate(k)
		route.Cells[i] = [2]int{x, y}
	}

	return route, nil
}

// endpoint validates a coordinate used as start or target.
func (gg *GridGraph) endpoint(xy [2]int) (*Cell, error) {
	c := gg.Cell(xy[0], xy[1])
	if c == nil {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, xy, gg.Width, gg.Height)
	}
	if !c.Passable() {
		return nil, fmt.Errorf("%w: %v has value %d < %d", ErrBlocked, xy, c.Value, gg.LandThreshold)
	}

	return c, nil
}
