package solution

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// DecimalPlaces is the fixed precision spec.md §4.7 requires for every
// materialized value.
const DecimalPlaces = 5

// ErrMissingValue indicates model had no entry for a variable the route
// matrix or graph referenced (a stale model against a rebuilt session).
var ErrMissingValue = errors.New("solution: model missing required value")

// Solution is the materialized outcome of spec.md §4.7: FlowVals[i][j] is
// demand i's j-th route's resolved flow, formatted to DecimalPlaces.
type Solution struct {
	FlowVals [][]string
}

// Materialize evaluates model into 5-decimal values, writes the resolved
// f_e and price back into g's edges as symbolic.Const, and returns the
// flow-value matrix. Already-concrete variables (e.g. S2's pre-committed
// demands) pass through model unchanged since they were asserted as plain
// equality atoms and so still resolve to a value.
func Materialize(g *wardropnet.Graph, routes routeenum.Result, flowVars symballoc.RouteFlowVars, model map[string]float64) (Solution, error) {
	flowVals := make([][]string, len(routes.Routes))
	for i, demandRoutes := range routes.Routes {
		flowVals[i] = make([]string, len(demandRoutes))
		for j := range demandRoutes {
			val, ok := model[flowVars[i][j].Name()]
			if !ok {
				return Solution{}, ErrMissingValue
			}
			flowVals[i][j] = round5(val)
		}
	}

	for _, e := range g.Edges() {
		if sym, ok := e.Flow.(symbolic.Sym); ok {
			val, ok := model[sym.Name()]
			if !ok {
				return Solution{}, ErrMissingValue
			}
			e.Flow = symbolic.Const(val)
		}
		if e.Price != nil {
			if sym, ok := e.Price.(symbolic.Sym); ok {
				val, ok := model[sym.Name()]
				if !ok {
					return Solution{}, ErrMissingValue
				}
				e.Price = symbolic.Const(val)
			}
		}
	}

	return Solution{FlowVals: flowVals}, nil
}

func round5(v float64) string {
	return decimal.NewFromFloat(v).Round(DecimalPlaces).String()
}
