package objective_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/objective"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func TestEvaluateAndLinearizeAt(t *testing.T) {
	g := wardropnet.NewGraph()
	_, err := g.AddEdge("A", "C", wardropnet.WithColor("red"), wardropnet.WithCapacity(100), wardropnet.WithPrice(symbolic.Const(5)), wardropnet.WithK(1))
	require.NoError(t, err)

	demands := []wardropnet.Demand{{S: "A", T: "C", D: 40}}
	routes := routeenum.Enumerate(g, demands, routeenum.DefaultOptions())

	env := symbolic.NewEnv()
	flowVars := symballoc.Allocate(env, g, routes)

	ctx := constraint.NewContext(env)
	ctx.Assert(constraint.BuildC1(g, routes, flowVars)...)
	ctx.Assert(constraint.BuildC2(g)...)
	ctx.Assert(constraint.BuildC3(env, demands, routes, flowVars)...)
	model, ok := ctx.Check()
	require.True(t, ok)

	val, err := objective.Evaluate(g, routes, flowVars, model)
	require.NoError(t, err)
	require.Greater(t, val, 0.0)

	lin, err := objective.LinearizeAt(g, routes, flowVars, model)
	require.NoError(t, err)
	require.Contains(t, lin.Terms, flowVars[0][0].Name())
}
