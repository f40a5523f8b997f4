package astar_test

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wayfind/astar"
)

// gnode is a string-keyed test node scored through its owning wgraph.
type gnode struct {
	astar.Scores[int]
	key   string
	x, y  int
	owner *wgraph
}

func (n *gnode) Key() string { return n.key }

func (n *gnode) DistanceTo(o *gnode) int { return n.owner.w[n.key][o.key] }

func (n *gnode) UpdateHeuristic(t *gnode) { n.SetH(n.owner.h(n, t)) }

func zeroHeuristic(_, _ *gnode) int { return 0 }

func manhattan(a, b *gnode) int { return absInt(a.x-b.x) + absInt(a.y-b.y) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func keysOf(nodes []*gnode) (out []string) {
	for _, n := range nodes {
		out = append(out, n.key)
	}

	return out
}

// wgraph is a weighted directed test graph with adjacency in insertion order.
type wgraph struct {
	nodes map[string]*gnode
	adj   map[string][]string
	w     map[string]map[string]int
	h     func(a, b *gnode) int
}

func newWGraph() *wgraph {
	return &wgraph{
		nodes: map[string]*gnode{},
		adj:   map[string][]string{},
		w:     map[string]map[string]int{},
		h:     zeroHeuristic,
	}
}

func (g *wgraph) node(k string) *gnode {
	n, ok := g.nodes[k]
	if !ok {
		n = &gnode{key: k, owner: g}
		g.nodes[k] = n
		g.w[k] = map[string]int{}
	}

	return n
}

func (g *wgraph) edge(from, to string, w int) {
	g.node(from)
	g.node(to)
	if _, dup := g.w[from][to]; !dup {
		g.adj[from] = append(g.adj[from], to)
	}
	g.w[from][to] = w
}

func (g *wgraph) undirected(a, b string, w int) {
	g.edge(a, b, w)
	g.edge(b, a, w)
}

func (g *wgraph) enum() astar.Enumerator[*gnode] {
	return astar.NewSliceEnumerator(func(cur *gnode) []*gnode {
		out := make([]*gnode, 0, len(g.adj[cur.key]))
		for _, k := range g.adj[cur.key] {
			out = append(out, g.nodes[k])
		}

		return out
	})
}

func (g *wgraph) engine(from, to string, beam astar.BeamFilter[string, int, *gnode], opts ...astar.Option[*gnode]) *astar.Engine[string, int, *gnode] {
	return astar.New[string, int](g.node(from), g.node(to), astar.KeyIs[string, *gnode](to), g.enum(), beam, opts...)
}

func (g *wgraph) pathCost(keys []string) int {
	total := 0
	for i := 1; i < len(keys); i++ {
		total += g.w[keys[i-1]][keys[i]]
	}

	return total
}

// shortest asks gonum's Dijkstra for the cheapest from→to cost.
// ok is false if to is unreachable.
func (g *wgraph) shortest(from, to string) (cost int, ok bool) {
	ids := make(map[string]int64, len(g.nodes))
	for _, k := range slices.Sorted(maps.Keys(g.nodes)) {
		ids[k] = int64(len(ids))
	}
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range ids {
		wg.AddNode(simple.Node(id))
	}
	for k, nbs := range g.adj {
		for _, nb := range nbs {
			if nb == k {
				continue
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(ids[k]), simple.Node(ids[nb]), float64(g.w[k][nb])))
		}
	}
	w := path.DijkstraFrom(simple.Node(ids[from]), wg).WeightTo(ids[to])
	if math.IsInf(w, 1) {
		return 0, false
	}

	return int(w), true
}

// randomGrid builds n nodes on a size×size plane with random directed edges
// whose weight is at least the Manhattan distance between the endpoints, so
// manhattan is an admissible heuristic.
func randomGrid(seed uint64, n, size, fanout int) *wgraph {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := newWGraph()
	g.h = manhattan
	for i := 0; i < n; i++ {
		nd := g.node(fmt.Sprintf("n%03d", i))
		nd.x, nd.y = r.IntN(size), r.IntN(size)
	}
	for i := 0; i < n; i++ {
		from := g.nodes[fmt.Sprintf("n%03d", i)]
		for j := 0; j < fanout; j++ {
			to := g.nodes[fmt.Sprintf("n%03d", r.IntN(n))]
			if to == from {
				continue
			}
			g.edge(from.key, to.key, manhattan(from, to)+r.IntN(5))
		}
	}

	return g
}
