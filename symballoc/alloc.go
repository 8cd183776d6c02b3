package symballoc

import (
	"fmt"

	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// RouteFlowVars[i][j] is the symbolic flow_i_j variable for demand i's
// j-th route, in the same shape as the route matrix it was allocated from.
type RouteFlowVars [][]symbolic.Sym

// Allocate declares, into env, every variable spec.md §4.2 names and
// writes the edge-scoped ones (f_e, and price when absent) back onto g's
// edges. It returns the route-scoped flow_i_j matrix.
//
// Allocate is idempotent per edge: re-running it against a graph whose
// edges already carry a Sym Flow/Price leaves those fields untouched, so
// callers may safely call it again after MergeRoutesExtension widened the
// edge set mid-session.
func Allocate(env *symbolic.Env, g *wardropnet.Graph, routes routeenum.Result) RouteFlowVars {
	for _, e := range g.Edges() {
		if e.Flow == nil {
			e.Flow = env.Declare(flowVarName(e), 0)
		}
		if e.Price == nil {
			e.Price = env.Declare(priceVarName(e), 0)
		}
	}

	vars := make(RouteFlowVars, len(routes.Routes))
	for i, demandRoutes := range routes.Routes {
		vars[i] = make([]symbolic.Sym, len(demandRoutes))
		for j := range demandRoutes {
			vars[i][j] = env.Declare(RouteFlowName(i, j), 0)
		}
	}
	return vars
}

func flowVarName(e *wardropnet.Edge) string {
	return fmt.Sprintf("f_%s-%s-%s", e.From, e.To, e.Color)
}

func priceVarName(e *wardropnet.Edge) string {
	return fmt.Sprintf("p_%s-%s-%s", e.From, e.To, e.Color)
}

// RouteFlowName returns the flow_<i>_<j> symbol name for demand i, route j.
func RouteFlowName(i, j int) string {
	return fmt.Sprintf("flow_%d_%d", i, j)
}

// DemandMinCostName returns the T_<i> symbol name for demand i.
func DemandMinCostName(i int) string {
	return fmt.Sprintf("T_%d", i)
}
