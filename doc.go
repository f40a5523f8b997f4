// Package wayfind is an incremental, generic A* search engine with adapters
// for terrain grids, gonum graphs and small planar graphs.
//
// The engine lives in astar. It is driven one expansion at a time, so callers
// can interleave search with other work, inspect the frontier and the closed
// set between steps, or bound the frontier with a beam filter.
//
// Subpackages:
//
//	astar/     - engine, frontier, closed set, solution map, beam filters
//	gridgraph/ - weighted 2D grids with 4- or 8-connectivity
//	netgraph/  - any gonum graph.Weighted
//	xygraph/   - integer-keyed points with explicit adjacency
//	metrics/   - Prometheus counters fed by engine hooks
//	scenario/  - YAML scenarios and a logging run harness
//	cmd/wayfind/ - command-line front end
//
// Quick example:
//
//	g := xygraph.Thirteen()
//	eng, _ := g.Search(0, 12, nil)
//	for eng.Step() {
//	}
//	fmt.Println(eng.PathKeys()) // [0 2 4 10 12]
//
//	go get github.com/katalvlaran/wayfind
package wayfind
