package netgraph_test

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wayfind/netgraph"
)

// ExampleNetwork_Search finds the fastest drive between two intersections of
// a small city. Weights are minutes; the C–D road is closed and carries a
// prohibitive weight instead of being removed.
func ExampleNetwork_Search() {
	names := []string{"A", "B", "C", "D", "E", "F"}
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, r := range []struct {
		u, v int64
		t    float64
	}{
		{0, 1, 4}, {0, 2, 2}, {1, 2, 1}, {1, 3, 5},
		{2, 3, math.MaxInt32}, {2, 4, 10}, {3, 5, 6}, {4, 5, 3},
	} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(r.u), simple.Node(r.v), r.t))
	}

	net, _ := netgraph.New(g)
	res, err := net.Search(context.Background(), 0, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	hops := make([]string, len(res.Path))
	for i, id := range res.Path {
		hops[i] = names[id]
	}
	fmt.Printf("%s (%g min)\n", strings.Join(hops, " → "), res.Weight)

	// Output:
	// A → C → B → D → F (14 min)
}
