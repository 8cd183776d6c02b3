package constraint

import (
	"github.com/flowmesh/wardrop/costexpr"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// BuildC1 emits, for every edge, f_e - Σ{flow_i_j : e in route(i,j)} == 0
// (spec.md §4.4 "edge-flow definition").
func BuildC1(g *wardropnet.Graph, routes routeenum.Result, flowVars symballoc.RouteFlowVars) []Atom {
	incident := make(map[string][]string) // edge ID -> flow var names
	for i, demandRoutes := range routes.Routes {
		for j, route := range demandRoutes {
			name := flowVars[i][j].Name()
			for _, ref := range route {
				e, ok := g.EdgeByKey(ref.U, ref.V, ref.Key)
				if !ok {
					continue
				}
				incident[e.ID] = append(incident[e.ID], name)
			}
		}
	}

	var atoms []Atom
	for _, e := range g.Edges() {
		terms := map[string]float64{flowSymName(e): 1}
		for _, n := range incident[e.ID] {
			terms[n] -= 1
		}
		atoms = append(atoms, NewAtom(LinExpr{Terms: terms}, Eq, 0))
	}
	return atoms
}

// BuildC2 emits, for every edge, 0 <= f_e <= capacity (capacity defaults to
// wardropnet.DefaultCapacity when absent), and price >= PriceMin for every
// edge whose price is still symbolic (spec.md §4.4 "capacity & bounds").
// f_e >= 0 is carried by the variable's own declared lower bound, not an atom.
func BuildC2(g *wardropnet.Graph) []Atom {
	var atoms []Atom
	for _, e := range g.Edges() {
		cap := e.Capacity
		if !e.HasCapacity {
			cap = wardropnet.DefaultCapacity
		}
		atoms = append(atoms, NewAtom(LinExpr{Terms: map[string]float64{flowSymName(e): 1}}, Le, cap))

		if e.Price != nil && e.Price.IsSymbolic() {
			if sym, ok := e.Price.(symbolic.Sym); ok {
				atoms = append(atoms, NewAtom(LinExpr{Terms: map[string]float64{sym.Name(): 1}}, Ge, PriceMin))
			}
		}
	}
	return atoms
}

// BuildC3 declares T_i for every demand with at least one route and emits
// Σ_j flow_i_j == d_i (spec.md §4.4 "demand conservation"). flow_i_j >= 0 is
// carried by the allocator's declared lower bound, not an atom here.
// Demands with no routes (an endpoint absent from the graph) are skipped.
func BuildC3(env *symbolic.Env, demands []wardropnet.Demand, routes routeenum.Result, flowVars symballoc.RouteFlowVars) []Atom {
	var atoms []Atom
	for i, d := range demands {
		if len(routes.Routes[i]) == 0 {
			continue
		}
		env.Declare(symballoc.DemandMinCostName(i), 0)
		terms := make(map[string]float64, len(flowVars[i]))
		for _, v := range flowVars[i] {
			terms[v.Name()] = 1
		}
		atoms = append(atoms, NewAtom(LinExpr{Terms: terms}, Eq, d.D))
	}
	return atoms
}

// BuildWardropGates builds one RouteGate per (demand, route) pair for
// demands with at least one route, ready for Context.AssertGate (spec.md
// §4.4 C4/C5).
func BuildWardropGates(g *wardropnet.Graph, demands []wardropnet.Demand, routes routeenum.Result, flowVars symballoc.RouteFlowVars) ([]RouteGate, error) {
	var gates []RouteGate
	for i := range demands {
		if len(routes.Routes[i]) == 0 {
			continue
		}
		demandVar := symballoc.DemandMinCostName(i)
		for j, route := range routes.Routes[i] {
			costExpr, err := costexpr.RouteCost(g, route)
			if err != nil {
				return nil, err
			}
			priceExpr, err := costexpr.RoutePrice(g, route)
			if err != nil {
				return nil, err
			}
			costLin, err := Linearize(costExpr)
			if err != nil {
				return nil, err
			}
			priceLin, err := Linearize(priceExpr)
			if err != nil {
				return nil, err
			}
			gates = append(gates, RouteGate{
				FlowVar:   flowVars[i][j].Name(),
				Cost:      costLin,
				Price:     priceLin,
				DemandVar: demandVar,
			})
		}
	}
	return gates, nil
}

// BuildFallbackC4 is the degraded mode of spec.md §4.4 ("Fallback C3/C4"):
// for every route, |cost_R - T_i| <= TolCost unconditionally, dropping the
// Implies gate and C5 entirely. None of the strategies S1-S5 falls back to
// it: each of them asserts only the full Wardrop gate set.
func BuildFallbackC4(gates []RouteGate) []Atom {
	var atoms []Atom
	for _, gt := range gates {
		costMinusT := sub(gt.Cost, LinExpr{Terms: map[string]float64{gt.DemandVar: 1}})
		atoms = append(atoms,
			NewAtom(costMinusT, Le, TolCost),
			NewAtom(scaleExpr(costMinusT, -1), Le, TolCost),
		)
	}
	return atoms
}

func flowSymName(e *wardropnet.Edge) string {
	if sym, ok := e.Flow.(symbolic.Sym); ok {
		return sym.Name()
	}
	return ""
}
