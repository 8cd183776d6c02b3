package constraint

// RouteGate is the per-route Wardrop case split of spec.md's C4/C5: route j
// of some demand is either "used" (flow at least TolFlow, and at
// equilibrium cost) or "unused" (flow at most TolFlow, and priced no lower
// than the equilibrium minus TolCost). The branch-and-bound search in
// Context decides, for every gate, which branch to assume before checking
// continuous feasibility of the result.
type RouteGate struct {
	FlowVar   string
	Cost      LinExpr
	Price     LinExpr
	DemandVar string // T_i
}

// usedAtoms returns the C4 branch: flow_ij >= TolFlow and |cost_R - T_i| <= TolCost.
func (g RouteGate) usedAtoms() []Atom {
	costMinusT := sub(g.Cost, LinExpr{Terms: map[string]float64{g.DemandVar: 1}})
	return []Atom{
		NewAtom(LinExpr{Terms: map[string]float64{g.FlowVar: 1}}, Ge, TolFlow),
		NewAtom(costMinusT, Le, TolCost),
		NewAtom(scaleExpr(costMinusT, -1), Le, TolCost),
	}
}

// unusedAtoms returns the C5 branch: flow_ij <= TolFlow and price_R - T_i >= -TolCost.
func (g RouteGate) unusedAtoms() []Atom {
	priceMinusT := sub(g.Price, LinExpr{Terms: map[string]float64{g.DemandVar: 1}})
	return []Atom{
		NewAtom(LinExpr{Terms: map[string]float64{g.FlowVar: 1}}, Le, TolFlow),
		NewAtom(priceMinusT, Ge, -TolCost),
	}
}

func scaleExpr(e LinExpr, factor float64) LinExpr {
	out := LinExpr{Terms: make(map[string]float64, len(e.Terms)), Const: e.Const * factor}
	for n, c := range e.Terms {
		out.Terms[n] = c * factor
	}
	return out
}
