package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/solution"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

func TestMaterialize_WritesBackConcreteValues(t *testing.T) {
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

	sol, err := solution.Materialize(g, routes, flowVars, model)
	require.NoError(t, err)
	require.Len(t, sol.FlowVals[0], 1)

	e, ok := g.EdgeByKey("A", "C", "red")
	require.True(t, ok)
	require.False(t, e.Flow.IsSymbolic(), "Flow must be a concrete Const after materialization")
	require.Equal(t, "40", e.Flow.(symbolic.Const).String())
}
