package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/strategy"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func newInput(t *testing.T, g *wardropnet.Graph, demands []wardropnet.Demand) strategy.Input {
	t.Helper()
	routes := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())
	env := symbolic.NewEnv()
	flowVars := symballoc.Allocate(env, g, routes)
	ctx := constraint.NewContext(env)
	return strategy.Input{Graph: g, Env: env, Routes: routes, FlowVars: flowVars, Demands: demands, Ctx: ctx}
}

func twoParallelEdgeGraph(t *testing.T) *wardropnet.Graph {
	t.Helper()
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(100), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", wardropnet.WithColor("bus"), wardropnet.WithCapacity(500), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(2))
	require.NoError(t, err)
	return g
}

func TestS1_VanillaOptimizeIsSAT(t *testing.T) {
	g := twoParallelEdgeGraph(t)
	demands := []wardropnet.Demand{{S: "A", T: "C", D: 120}}
	in := newInput(t, g, demands)

	res := strategy.S1(in)
	require.True(t, res.Solved)
	require.NotEmpty(t, res.Model)
}

func TestS2_DescendingPriceSymbolicEdge(t *testing.T) {
	g := wardropnet.NewGraph()
	env := symbolic.NewEnv()
	price := env.Declare("p_A-C-ferry", 0)
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("ferry"), wardropnet.WithCapacity(300), wardropnet.WithPrice(price), wardropnet.WithK(1))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "A", T: "C", D: 50}}
	routes := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())
	flowVars := symballoc.Allocate(env, g, routes)
	ctx := constraint.NewContext(env)
	in := strategy.Input{Graph: g, Env: env, Routes: routes, FlowVars: flowVars, Demands: demands, Ctx: ctx}

	res := strategy.S2(in)
	require.True(t, res.Solved)

	edge, ok := g.EdgeByKey("A", "C", "ferry")
	require.True(t, ok)
	require.False(t, edge.Price.IsSymbolic(), "S2 must substitute a concrete price back into the canonical graph")
}

func TestS4_BinarySearchOnCapacityIsSAT(t *testing.T) {
	g := twoParallelEdgeGraph(t)
	demands := []wardropnet.Demand{{S: "A", T: "C", D: 120}}
	in := newInput(t, g, demands)

	res := strategy.S4(in)
	require.True(t, res.Solved, "demand 120 across two edges must fit within [500, 5000]")
}

func TestS5_CapacityInflationStopsAtFirstSAT(t *testing.T) {
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(10), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "A", T: "C", D: 40}}
	in := newInput(t, g, demands)

	res := strategy.S5(in)
	require.True(t, res.Solved, "inflating a 10-capacity edge must eventually cover a 40-unit demand")

	edge, ok := g.EdgeByKey("A", "C", "red")
	require.True(t, ok)
	require.Equal(t, 60.0, edge.Capacity, "the first inflation (10+50) is already SAT, so S5 stops there")
}
