package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func buildScenario(t *testing.T) (*wardropnet.Graph, []wardropnet.Demand, *symbolic.Env, routeenum.Result, symballoc.RouteFlowVars) {
	t.Helper()
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(100), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", wardropnet.WithColor("bus"), wardropnet.WithCapacity(500), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(2))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "A", T: "C", D: 120}}
	routes := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())
	require.Len(t, routes.Routes[0], 2)

	env := symbolic.NewEnv()
	flowVars := symballoc.Allocate(env, g, routes)
	return g, demands, env, routes, flowVars
}

func TestContext_FullWardropGatesAreSAT(t *testing.T) {
	g, demands, env, routes, flowVars := buildScenario(t)

	ctx := constraint.NewContext(env)
	ctx.Assert(constraint.BuildC1(g, routes, flowVars)...)
	ctx.Assert(constraint.BuildC2(g)...)
	ctx.Assert(constraint.BuildC3(env, demands, routes, flowVars)...)
	gates, err := constraint.BuildWardropGates(g, demands, routes, flowVars)
	require.NoError(t, err)
	ctx.AssertGate(gates...)

	model, ok := ctx.Check()
	require.True(t, ok, "two parallel edges with ample combined capacity must be SAT")

	total := model[flowVars[0][0].Name()] + model[flowVars[0][1].Name()]
	require.InDelta(t, 120, total, 1e-4, "demand conservation must hold in the returned model")
}

func TestContext_PushPopDiscardsAssertions(t *testing.T) {
	g, demands, env, routes, flowVars := buildScenario(t)

	ctx := constraint.NewContext(env)
	ctx.Assert(constraint.BuildC1(g, routes, flowVars)...)
	ctx.Assert(constraint.BuildC2(g)...)
	ctx.Assert(constraint.BuildC3(env, demands, routes, flowVars)...)

	ctx.Push()
	// A negative route flow contradicts the variable's zero lower bound, so
	// this makes the system UNSAT.
	ctx.Assert(constraint.NewAtom(constraint.LinExpr{Terms: map[string]float64{flowVars[0][0].Name(): 1}}, constraint.Eq, -50))
	_, ok := ctx.Check()
	require.False(t, ok)

	require.NoError(t, ctx.Pop())
	_, ok = ctx.Check()
	require.True(t, ok, "popping the bad assertion must restore feasibility")
}

func TestContext_FallbackC4DropsWardropGate(t *testing.T) {
	g, demands, env, routes, flowVars := buildScenario(t)

	ctx := constraint.NewContext(env)
	ctx.Assert(constraint.BuildC1(g, routes, flowVars)...)
	ctx.Assert(constraint.BuildC2(g)...)
	ctx.Assert(constraint.BuildC3(env, demands, routes, flowVars)...)
	gates, err := constraint.BuildWardropGates(g, demands, routes, flowVars)
	require.NoError(t, err)
	ctx.Assert(constraint.BuildFallbackC4(gates)...)

	_, ok := ctx.Check()
	require.True(t, ok)
}
