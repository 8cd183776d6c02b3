package routeenum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func TestEnumerate_ParallelEdgesSingleDemand(t *testing.T) {
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(100), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", wardropnet.WithColor("Bus"), wardropnet.WithCapacity(500), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(2))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "A", T: "C", D: 120}}
	res := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())

	require.Len(t, res.Routes[0], 2, "both parallel single-hop routes must be enumerated")
	for _, r := range res.Routes[0] {
		require.Len(t, r, 1)
		require.Equal(t, "A", r[0].U)
		require.Equal(t, "C", r[0].V)
	}
}

func TestEnumerate_UnreachableDemandIsSkippedSilently(t *testing.T) {
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "X", T: "Y", D: 10}}
	res := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())

	require.Empty(t, res.Routes[0])
	require.False(t, g.HasVertex("X"), "no synthetic edge, no vertex registration for an absent endpoint")
}

func TestEnumerate_NoPathInjectsSyntheticPersonalEdge(t *testing.T) {
	g := wardropnet.NewGraph()
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))

	demands := []wardropnet.Demand{{S: "X", T: "Y", D: 10}}
	res := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())

	require.Len(t, res.Routes[0], 1)
	route := res.Routes[0][0]
	require.Len(t, route, 1)
	require.Equal(t, "auto_X_Y", route[0].Key)

	edge, ok := g.EdgeByKey("X", "Y", "auto_X_Y")
	require.True(t, ok)
	require.Equal(t, 500.0, edge.Capacity)
	require.Equal(t, symbolic.Const(100), edge.Price)
}

func TestEnumerate_TruncatesDeterministicallyToMaxRoutes(t *testing.T) {
	g := wardropnet.NewGraph()
	colors := []string{"a", "b", "c", "d"}
	for _, c := range colors {
		_, err := g.AddEdge("A", "M", wardropnet.WithColor(c))
		require.NoError(t, err)
	}
	for _, c := range colors {
		_, err := g.AddEdge("M", "Z", wardropnet.WithColor(c))
		require.NoError(t, err)
	}

	demands := []wardropnet.Demand{{S: "A", T: "Z", D: 1}}
	opts := routeenum.DefaultOptions()
	res1 := routeenum.Enumerate(g.Clone(), demands, opts)
	res2 := routeenum.Enumerate(g.Clone(), demands, opts)

	require.Len(t, res1.Routes[0], opts.MaxRoutesPerDemand)
	require.Equal(t, res1.Routes[0], res2.Routes[0], "truncation order must be deterministic across runs")
}
