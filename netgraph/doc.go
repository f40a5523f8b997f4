// Package netgraph runs the astar engine over any gonum weighted graph.
//
// A Network wraps a read-only graph.Weighted. Each call to Search builds its
// own Vertex set lazily as the frontier reaches new nodes, so one Network may
// serve concurrent searches as long as the underlying graph is not mutated.
//
// Neighbors are visited in ascending gonum ID order, which makes expansion
// order (and therefore tie-breaking) deterministic for a given graph.
//
// Heuristics use gonum's path.Heuristic signature. Without one the search
// degenerates to Dijkstra. New scans every edge once; if any weight is
// negative, Engine and Search refuse to run with ErrNegativeWeight.
//
// Errors:
//
//   - ErrNilGraph       - New was given a nil graph.
//   - ErrNodeNotFound   - an endpoint ID is not in the graph.
//   - ErrNegativeWeight - some edge in the graph has weight < 0.
//   - ErrNoPath         - the target is unreachable (or every route was suppressed).
package netgraph
