package netgraph

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/wayfind/astar"
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("netgraph: graph is nil")
	ErrNodeNotFound   = errors.New("netgraph: node not found")
	ErrNegativeWeight = errors.New("netgraph: negative edge weight")
	ErrNoPath         = errors.New("netgraph: no path")
)

// Network is an A*-searchable view of a gonum weighted graph.
type Network struct {
	g         graph.Weighted
	heuristic path.Heuristic
	beam      astar.BeamFilter[int64, float64, *Vertex]
	negative  error // first negative edge found by New, returned by every search
}

// Option configures a Network.
type Option func(*Network)

// WithHeuristic sets the estimate used for every node. It must not
// overestimate the remaining cost for results to be optimal.
func WithHeuristic(h path.Heuristic) Option {
	return func(n *Network) { n.heuristic = h }
}

// WithBeam installs a beam filter applied to every search.
func WithBeam(b astar.BeamFilter[int64, float64, *Vertex]) Option {
	return func(n *Network) { n.beam = b }
}

// New wraps g. The graph must not change while searches are running.
// All edges are scanned once; a negative weight makes every later Search and
// Engine call fail with ErrNegativeWeight.
func New(g graph.Weighted, opts ...Option) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := &Network{g: g}
	for _, opt := range opts {
		opt(n)
	}
	if n.heuristic == nil {
		n.heuristic = func(_, _ graph.Node) float64 { return 0 }
	}
	n.negative = firstNegativeEdge(g)

	return n, nil
}

// firstNegativeEdge scans every edge in ID order and reports the first one
// with a negative weight, or nil.
func firstNegativeEdge(g graph.Weighted) error {
	for _, u := range sortedByID(graph.NodesOf(g.Nodes())) {
		for _, v := range sortedByID(graph.NodesOf(g.From(u.ID()))) {
			if w, _ := g.Weight(u.ID(), v.ID()); w < 0 {
				return fmt.Errorf("%w: %d→%d is %g", ErrNegativeWeight, u.ID(), v.ID(), w)
			}
		}
	}

	return nil
}

func sortedByID(nodes []graph.Node) []graph.Node {
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })

	return nodes
}

// Result is a completed route.
type Result struct {
	Path     []int64 // gonum node IDs, start first
	Weight   float64 // sum of edge weights along Path
	Expanded int     // nodes expanded by the engine
}

// Vertex is the astar node for one gonum node within one search.
type Vertex struct {
	astar.Scores[float64]

	node graph.Node
	s    *session
}

// Key implements astar.Node.
func (v *Vertex) Key() int64 { return v.node.ID() }

// Node returns the underlying gonum node.
func (v *Vertex) Node() graph.Node { return v.node }

// DistanceTo implements astar.Node. Missing edges cost +Inf.
func (v *Vertex) DistanceTo(other *Vertex) float64 {
	w, ok := v.s.net.g.Weight(v.node.ID(), other.node.ID())
	if !ok {
		return math.Inf(1)
	}

	return w
}

// UpdateHeuristic implements astar.Node.
func (v *Vertex) UpdateHeuristic(target *Vertex) {
	v.SetH(v.s.net.heuristic(v.node, target.node))
}

// session owns the vertices created during one search.
type session struct {
	net      *Network
	vertices map[int64]*Vertex
}

func (s *session) vertex(n graph.Node) *Vertex {
	v, ok := s.vertices[n.ID()]
	if !ok {
		v = &Vertex{node: n, s: s}
		s.vertices[n.ID()] = v
	}

	return v
}

// neighbors lists successors in ID order.
func (s *session) neighbors(v *Vertex) []*Vertex {
	succ := sortedByID(graph.NodesOf(s.net.g.From(v.Key())))
	out := make([]*Vertex, 0, len(succ))
	for _, u := range succ {
		out = append(out, s.vertex(u))
	}

	return out
}

// Engine prepares a stepwise search from one node ID to another.
// The returned engine is independent of other searches on n.
//
// Returns ErrNodeNotFound for unknown endpoints and ErrNegativeWeight if the
// graph has a negative edge.
func (n *Network) Engine(from, to int64, opts ...astar.Option[*Vertex]) (*astar.Engine[int64, float64, *Vertex], error) {
	src := n.g.Node(from)
	if src == nil {
		return nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, from)
	}
	dst := n.g.Node(to)
	if dst == nil {
		return nil, fmt.Errorf("%w: target %d", ErrNodeNotFound, to)
	}
	if n.negative != nil {
		return nil, n.negative
	}
	s := &session{net: n, vertices: make(map[int64]*Vertex)}
	start, target := s.vertex(src), s.vertex(dst)

	return astar.New[int64, float64](start, target, astar.KeyIs[int64, *Vertex](to),
		astar.NewSliceEnumerator(s.neighbors), n.beam, opts...), nil
}

// Search finds a minimum-weight path from one node ID to another.
// Cancellation of ctx is checked between expansions.
func (n *Network) Search(ctx context.Context, from, to int64, opts ...astar.Option[*Vertex]) (Result, error) {
	eng, err := n.Engine(from, to, opts...)
	if err != nil {
		return Result{}, err
	}
	for !eng.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("netgraph: search %d→%d: %w", from, to, err)
		}
		eng.Step()
	}
	if !eng.HasSolution() {
		return Result{}, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	return Result{
		Path:     eng.PathKeys(),
		Weight:   eng.CurrentNode().G(),
		Expanded: eng.Expanded(),
	}, nil
}
