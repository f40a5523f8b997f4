package xygraph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/wayfind/astar"
)

// Graph owns the nodes of a planar directed graph.
type Graph struct {
	nodes     map[int]*Node
	cost      CostFunc
	heuristic CostFunc
}

// New returns an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{nodes: make(map[int]*Node), cost: ProductCost}
	for _, opt := range opts {
		opt(g)
	}
	if g.heuristic == nil {
		g.heuristic = g.cost
	}

	return g
}

// AddNode creates node id at (x, y).
func (g *Graph) AddNode(id, x, y int) (*Node, error) {
	if _, ok := g.nodes[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	n := &Node{id: id, x: x, y: y, graph: g}
	g.nodes[id] = n

	return n, nil
}

// AddEdge adds the directed edge from→to. Both nodes must exist.
func (g *Graph) AddEdge(from, to int) error {
	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, from)
	}
	if _, ok = g.nodes[to]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, to)
	}
	src.adj = append(src.adj, to)

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b *Node) int { return a.id - b.id })

	return out
}

// Cost returns the cost of the directed hop a→b under the graph's cost model.
func (g *Graph) Cost(a, b *Node) int { return g.cost(a, b) }

// Reset zeroes the scores of every node so the graph can serve another run.
func (g *Graph) Reset() {
	for _, n := range g.nodes {
		n.Reset()
	}
}

// Neighbors returns an enumerator over outgoing adjacency, in insertion order.
func (g *Graph) Neighbors() astar.Enumerator[*Node] {
	return astar.NewSeqEnumerator(func(cur *Node) iter.Seq[*Node] {
		return func(yield func(*Node) bool) {
			for _, id := range cur.adj {
				if !yield(g.nodes[id]) {
					return
				}
			}
		}
	})
}

// Search prepares an engine from node from to node to. The caller drives it.
// Scores left over from a previous run are cleared first.
func (g *Graph) Search(from, to int, beam astar.BeamFilter[int, int, *Node], opts ...astar.Option[*Node]) (*astar.Engine[int, int, *Node], error) {
	start, ok := g.nodes[from]
	if !ok {
		return nil, fmt.Errorf("%w: start %d", ErrUnknownNode, from)
	}
	target, ok := g.nodes[to]
	if !ok {
		return nil, fmt.Errorf("%w: target %d", ErrUnknownNode, to)
	}
	g.Reset()

	return astar.New[int, int](start, target, astar.KeyIs[int, *Node](to), g.Neighbors(), beam, opts...), nil
}

// PathCost sums the hop costs along ids. Unknown IDs contribute nothing.
func (g *Graph) PathCost(ids []int) int {
	total := 0
	for i := 1; i < len(ids); i++ {
		a, okA := g.nodes[ids[i-1]]
		b, okB := g.nodes[ids[i]]
		if okA && okB {
			total += g.cost(a, b)
		}
	}

	return total
}

// Thirteen builds the 13-node reference fixture: start 0, target 12,
// ProductCost unless overridden.
func Thirteen(opts ...Option) *Graph {
	g := New(opts...)
	coords := [][2]int{
		{0, 5}, {3, 6}, {4, 3}, {6, 9}, {7, 3}, {6, 1}, {8, 6},
		{11, 8}, {10, 2}, {13, 6}, {8, 6}, {13, 0}, {17, 3},
	}
	for id, c := range coords {
		_, _ = g.AddNode(id, c[0], c[1])
	}
	adjacency := map[int][]int{
		0: {1, 2}, 1: {3}, 2: {4, 5}, 3: {6, 7}, 4: {8, 10},
		5: {8}, 6: {7, 10}, 7: {9}, 8: {11}, 10: {12},
	}
	for from := 0; from < len(coords); from++ {
		for _, to := range adjacency[from] {
			_ = g.AddEdge(from, to)
		}
	}

	return g
}
