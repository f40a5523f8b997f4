package xygraph

import (
	"errors"

	"github.com/katalvlaran/wayfind/astar"
)

// Sentinel errors for graph construction.
var (
	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("xygraph: duplicate node id")
	// ErrUnknownNode indicates an edge or lookup referenced a missing node ID.
	ErrUnknownNode = errors.New("xygraph: unknown node id")
)

// CostFunc returns the cost of moving from a to b.
type CostFunc func(a, b *Node) int

// ProductCost is the fixture cost a.x*b.x + a.y + b.y.
func ProductCost(a, b *Node) int { return a.x*b.x + a.y + b.y }

// ManhattanCost is |a.x-b.x| + |a.y-b.y|.
func ManhattanCost(a, b *Node) int { return abs(a.x-b.x) + abs(a.y-b.y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Node is a keyed point with outgoing adjacency. Scores are embedded; the ID
// is the immutable key.
type Node struct {
	astar.Scores[int]

	id    int
	x, y  int
	adj   []int
	graph *Graph
}

// Key implements astar.Node.
func (n *Node) Key() int { return n.id }

// ID returns the node identifier.
func (n *Node) ID() int { return n.id }

// X returns the x coordinate.
func (n *Node) X() int { return n.x }

// Y returns the y coordinate.
func (n *Node) Y() int { return n.y }

// Adjacent returns a copy of the outgoing neighbor IDs, in insertion order.
func (n *Node) Adjacent() []int { return append([]int(nil), n.adj...) }

// DistanceTo implements astar.Node using the graph's cost function.
func (n *Node) DistanceTo(other *Node) int { return n.graph.cost(n, other) }

// UpdateHeuristic implements astar.Node using the graph's heuristic.
func (n *Node) UpdateHeuristic(target *Node) { n.SetH(n.graph.heuristic(n, target)) }

// Option configures a Graph.
type Option func(*Graph)

// WithCost sets the edge cost function. Default is ProductCost.
func WithCost(fn CostFunc) Option {
	return func(g *Graph) {
		if fn != nil {
			g.cost = fn
		}
	}
}

// WithHeuristic sets the heuristic independently from the cost function.
// By default the heuristic equals the cost function.
func WithHeuristic(fn CostFunc) Option {
	return func(g *Graph) {
		if fn != nil {
			g.heuristic = fn
		}
	}
}
