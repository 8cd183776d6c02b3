package objective

import (
	"errors"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/costexpr"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// ErrMissingValue indicates model is missing a value Evaluate or
// LinearizeAt needed (a stale model against a rebuilt route set).
var ErrMissingValue = errors.New("objective: model missing required value")

// Evaluate computes F = Σ_{i,j} flow_i_j · cost_R(i,j) at a concrete model.
func Evaluate(g *wardropnet.Graph, routes routeenum.Result, flowVars symballoc.RouteFlowVars, model map[string]float64) (float64, error) {
	var total float64
	for i, demandRoutes := range routes.Routes {
		for j, route := range demandRoutes {
			costExpr, err := costexpr.RouteCost(g, route)
			if err != nil {
				return 0, err
			}
			resolved, ok := symbolic.Eval(costExpr, model)
			if !ok {
				return 0, ErrMissingValue
			}
			costVal := float64(resolved.(symbolic.Const))

			flowName := flowVars[i][j].Name()
			flowVal, ok := model[flowName]
			if !ok {
				return 0, ErrMissingValue
			}
			total += flowVal * costVal
		}
	}
	return total, nil
}

// LinearizeAt freezes cost_R(i,j) at its value in model and returns the
// resulting linear proxy Σ_{i,j} cost_R(i,j)|_model · flow_i_j, suitable as
// a constraint.CheckMinimize objective for the next Frank-Wolfe iteration.
func LinearizeAt(g *wardropnet.Graph, routes routeenum.Result, flowVars symballoc.RouteFlowVars, model map[string]float64) (constraint.LinExpr, error) {
	out := constraint.LinExpr{Terms: make(map[string]float64)}
	for i, demandRoutes := range routes.Routes {
		for j, route := range demandRoutes {
			costExpr, err := costexpr.RouteCost(g, route)
			if err != nil {
				return constraint.LinExpr{}, err
			}
			resolved, ok := symbolic.Eval(costExpr, model)
			if !ok {
				return constraint.LinExpr{}, ErrMissingValue
			}
			costVal := float64(resolved.(symbolic.Const))
			out.Terms[flowVars[i][j].Name()] += costVal
		}
	}
	return out, nil
}
