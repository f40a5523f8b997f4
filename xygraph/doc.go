// Package xygraph is a small planar-graph node model for the astar engine:
// integer-keyed nodes with (x, y) coordinates, explicit directed adjacency and
// a pluggable cost function.
//
// The heuristic of a node is, unless overridden with WithHeuristic, the cost
// function applied between the node and the target. Whether that heuristic is
// admissible depends entirely on the cost model chosen.
//
// Cost models:
//
//   - ProductCost:   a.x*b.x + a.y + b.y (legacy fixture cost).
//   - ManhattanCost: |a.x-b.x| + |a.y-b.y|.
//
// Thirteen returns the 13-node reference fixture used across the test suites.
package xygraph
