package wardropnet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func TestAddEdge_ParallelKeysDisambiguate(t *testing.T) {
	g := wardropnet.NewGraph()
	red, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(100), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)
	require.Equal(t, "red", red.Key)

	bus, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(500), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(2))
	require.NoError(t, err)
	require.Equal(t, "red#2", bus.Key)

	parallels := g.EdgesBetween("A", "C")
	require.Len(t, parallels, 2)
}

func TestEdgeByKey_RoundTrip(t *testing.T) {
	g := wardropnet.NewGraph()
	e, err := g.AddEdge("A", "C", wardropnet.WithColor("Bus"), wardropnet.WithKey("Bus"))
	require.NoError(t, err)

	found, ok := g.EdgeByKey("A", "C", "Bus")
	require.True(t, ok)
	require.Equal(t, e.ID, found.ID)

	_, ok = g.EdgeByKey("C", "A", "Bus")
	require.True(t, ok, "undirected lookup must work from either endpoint order")
}

func TestResolveK_FallsBackToColorDefaultThenOne(t *testing.T) {
	g := wardropnet.NewGraph(wardropnet.WithColorK(map[string]float64{"red": 3}))
	red, _ := g.AddEdge("A", "B", wardropnet.WithColor("red"))
	g.ResolveK(red)
	require.Equal(t, 3.0, red.K)

	unknown, _ := g.AddEdge("A", "B", wardropnet.WithColor("unknown"))
	g.ResolveK(unknown)
	require.Equal(t, 1.0, unknown.K)
}

func TestAddPersonalEdge(t *testing.T) {
	g := wardropnet.NewGraph()
	e, err := g.AddPersonalEdge("X", "Y")
	require.NoError(t, err)
	require.Equal(t, "auto_X_Y", e.Key)
	require.Equal(t, "personal", e.Color)
	require.Equal(t, 500.0, e.Capacity)
	require.Equal(t, symbolic.Const(100), e.Price)
	require.Equal(t, 1.0, e.K)
}

func TestClone_IsIndependent(t *testing.T) {
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "B", wardropnet.WithColor("red"))
	require.NoError(t, err)

	clone := g.Clone()
	_, err = clone.AddEdge("B", "C", wardropnet.WithColor("red"))
	require.NoError(t, err)

	require.Len(t, g.Edges(), 1)
	require.Len(t, clone.Edges(), 2)
}
