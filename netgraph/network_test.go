package netgraph_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/netgraph"
)

// plane is a random geometric graph: weights are Euclidean lengths
// stretched by up to 50%, so straight-line distance is admissible.
type plane struct {
	g  *simple.WeightedUndirectedGraph
	xy map[int64][2]float64
}

func newPlane(seed uint64, n, degree int) plane {
	r := rand.New(rand.NewPCG(seed, 7))
	p := plane{g: simple.NewWeightedUndirectedGraph(0, math.Inf(1)), xy: make(map[int64][2]float64, n)}
	for id := int64(0); id < int64(n); id++ {
		p.g.AddNode(simple.Node(id))
		p.xy[id] = [2]float64{r.Float64() * 100, r.Float64() * 100}
	}
	for id := int64(0); id < int64(n); id++ {
		for d := 0; d < degree; d++ {
			to := r.Int64N(int64(n))
			if to == id {
				continue
			}
			w := p.euclid(simple.Node(id), simple.Node(to)) * (1 + r.Float64()/2)
			p.g.SetWeightedEdge(p.g.NewWeightedEdge(simple.Node(id), simple.Node(to), w))
		}
	}

	return p
}

func (p plane) euclid(a, b graph.Node) float64 {
	pa, pb := p.xy[a.ID()], p.xy[b.ID()]

	return math.Hypot(pa[0]-pb[0], pa[1]-pb[1])
}

func TestNew_NilGraph(t *testing.T) {
	_, err := netgraph.New(nil)
	assert.ErrorIs(t, err, netgraph.ErrNilGraph)
}

func TestSearch_Errors(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(2), 1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(2), simple.Node(3), 4))
	g.AddNode(simple.Node(9))
	net, err := netgraph.New(g)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = net.Search(ctx, 42, 1)
	assert.ErrorIs(t, err, netgraph.ErrNodeNotFound)
	_, err = net.Search(ctx, 1, 42)
	assert.ErrorIs(t, err, netgraph.ErrNodeNotFound)
	_, err = net.Search(ctx, 1, 9)
	assert.ErrorIs(t, err, netgraph.ErrNoPath)
	_, err = net.Search(ctx, 9, 1)
	assert.ErrorIs(t, err, netgraph.ErrNoPath)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = net.Search(cancelled, 1, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// A negative edge anywhere in the graph is rejected before any expansion,
// even when the cheapest route would never touch it.
func TestEngine_NegativeWeight(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(2), -1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(3), 5))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(3), simple.Node(4), 1))
	net, err := netgraph.New(g)
	require.NoError(t, err)

	eng, err := net.Engine(1, 4)
	require.ErrorIs(t, err, netgraph.ErrNegativeWeight)
	assert.Nil(t, eng)
	assert.Contains(t, err.Error(), "1→2")

	_, err = net.Search(context.Background(), 1, 4)
	assert.ErrorIs(t, err, netgraph.ErrNegativeWeight)
	_, err = net.Search(context.Background(), 3, 4)
	assert.ErrorIs(t, err, netgraph.ErrNegativeWeight)
}

func TestSearch_DirectedPrefersCheaperDetour(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, e := range []struct {
		from, to int64
		w        float64
	}{
		{1, 2, 10}, {1, 3, 2}, {3, 4, 2}, {4, 2, 2}, {2, 5, 1},
	} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.from), simple.Node(e.to), e.w))
	}
	net, err := netgraph.New(g)
	require.NoError(t, err)

	res, err := net.Search(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4, 2, 5}, res.Path)
	assert.InDelta(t, 7.0, res.Weight, 1e-9)
}

func TestSearch_MatchesGonum(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		p := newPlane(seed, 150, 3)
		plain, err := netgraph.New(p.g)
		require.NoError(t, err)
		guided, err := netgraph.New(p.g, netgraph.WithHeuristic(p.euclid))
		require.NoError(t, err)

		dijkstra := path.DijkstraFrom(simple.Node(0), p.g)
		for _, to := range []int64{17, 64, 149} {
			want := dijkstra.WeightTo(to)
			a, errA := plain.Search(context.Background(), 0, to)
			b, errB := guided.Search(context.Background(), 0, to)
			if math.IsInf(want, 1) {
				assert.ErrorIs(t, errA, netgraph.ErrNoPath)
				assert.ErrorIs(t, errB, netgraph.ErrNoPath)
				continue
			}
			require.NoError(t, errA, "seed=%d to=%d", seed, to)
			require.NoError(t, errB, "seed=%d to=%d", seed, to)
			assert.InDelta(t, want, a.Weight, 1e-9, "dijkstra mode seed=%d to=%d", seed, to)
			assert.InDelta(t, want, b.Weight, 1e-9, "heuristic mode seed=%d to=%d", seed, to)
			assert.LessOrEqual(t, b.Expanded, a.Expanded, "seed=%d to=%d", seed, to)

			ref, _ := path.AStar(simple.Node(0), simple.Node(to), p.g, p.euclid)
			assert.InDelta(t, ref.WeightTo(to), b.Weight, 1e-9)
		}
	}
}

func TestEngine_StepwiseWithBeam(t *testing.T) {
	p := newPlane(3, 60, 4)
	net, err := netgraph.New(p.g,
		netgraph.WithHeuristic(p.euclid),
		netgraph.WithBeam(astar.MaxFrontier[int64, float64, *netgraph.Vertex](4)))
	require.NoError(t, err)

	eng, err := net.Engine(0, 59)
	require.NoError(t, err)
	for eng.Step() {
		require.LessOrEqual(t, eng.Frontier().Len(), 4)
	}
	if eng.HasSolution() {
		ids := eng.PathKeys()
		assert.Equal(t, int64(0), ids[0])
		assert.Equal(t, int64(59), ids[len(ids)-1])
		assert.Equal(t, graph.Node(simple.Node(59)), eng.CurrentNode().Node())
	} else {
		assert.Equal(t, astar.Exhausted, eng.State())
	}
}
