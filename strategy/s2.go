package strategy

import (
	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/costexpr"
	"github.com/flowmesh/wardrop/objective"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// Price-search parameters of spec.md §4.6.
const (
	priceMax   = 120.0
	priceMin   = 5.0
	priceDelta = 5.0
)

// S2 is the descending-price search of spec.md §4.6: demands whose route
// prices are all already numeric are pre-committed to a deterministic
// cost-proportional split, then every remaining symbolic price is probed
// from priceMax down to priceMin, stopping at the first UNSAT.
func S2(in Input) Result {
	return descendingPriceSearch(in, false)
}

// S3 is the S2 variant that also minimizes the objective at every price
// probe (spec.md §4.6 "chosen when a concrete-price optimum is wanted").
func S3(in Input) Result {
	return descendingPriceSearch(in, true)
}

func descendingPriceSearch(in Input, withObjective bool) Result {
	committedAtoms, committed := commitNumericDemands(in)

	var (
		lastModel map[string]float64
		lastPrice float64
		solvedAny bool
	)

	for p := priceMax; p >= priceMin; p -= priceDelta {
		clone := in.Graph.Clone()
		substitutePrices(clone, p)
		probeIn := in
		probeIn.Graph = clone

		in.Ctx.Push()
		in.Ctx.Assert(committedAtoms...)
		in.Ctx.Assert(buildAmbientConstraints(probeIn)...)
		gates, err := gatesExcluding(probeIn, committed)
		if err != nil {
			in.Ctx.Pop()
			break
		}
		in.Ctx.AssertGate(gates...)

		model, ok := in.Ctx.Check()
		if ok && withObjective {
			if refined, rok := refineWithObjective(in.Ctx, probeIn, model); rok {
				model = refined
			}
		}
		in.Ctx.Pop()

		if !ok {
			break
		}
		lastModel, lastPrice, solvedAny = model, p, true
	}

	if !solvedAny {
		return Result{}
	}

	for _, e := range in.Graph.Edges() {
		if e.Price != nil && e.Price.IsSymbolic() {
			e.Price = symbolic.Const(lastPrice)
		}
	}

	return Result{Model: lastModel, Solved: true}
}

func refineWithObjective(ctx *constraint.Context, in Input, model map[string]float64) (map[string]float64, bool) {
	lin, err := linearizeObjective(in, model)
	if err != nil {
		return nil, false
	}
	return ctx.CheckMinimize(lin)
}

// commitNumericDemands pre-assigns flow_i_j for every demand whose routes
// are all priced with concrete numbers, freeing those flow variables from
// the Wardrop branch search (spec.md §4.6).
func commitNumericDemands(in Input) ([]constraint.Atom, map[int]bool) {
	var atoms []constraint.Atom
	committed := make(map[int]bool)

	for i, demandRoutes := range in.Routes.Routes {
		if len(demandRoutes) == 0 {
			continue
		}
		prices := make([]float64, len(demandRoutes))
		allNumeric := true
		for j, route := range demandRoutes {
			priceExpr, err := costexpr.RoutePrice(in.Graph, route)
			if err != nil {
				allNumeric = false
				break
			}
			c, ok := priceExpr.Fold().(symbolic.Const)
			if !ok {
				allNumeric = false
				break
			}
			prices[j] = float64(c)
		}
		if !allNumeric {
			continue
		}
		var sum float64
		for _, p := range prices {
			sum += p
		}
		if sum <= 0 {
			continue
		}

		committed[i] = true
		d := in.Demands[i].D
		for j, p := range prices {
			name := in.FlowVars[i][j].Name()
			val := (p / sum) * d
			atoms = append(atoms, constraint.NewAtom(constraint.LinExpr{Terms: map[string]float64{name: 1}}, constraint.Eq, val))
		}
	}
	return atoms, committed
}

func gatesExcluding(in Input, committed map[int]bool) ([]constraint.RouteGate, error) {
	all, err := buildGates(in)
	if err != nil || len(committed) == 0 {
		return all, err
	}
	skip := make(map[string]bool, len(committed))
	for i := range committed {
		skip[symballoc.DemandMinCostName(i)] = true
	}
	out := make([]constraint.RouteGate, 0, len(all))
	for _, g := range all {
		if !skip[g.DemandVar] {
			out = append(out, g)
		}
	}
	return out, nil
}

func substitutePrices(g *wardropnet.Graph, p float64) {
	for _, e := range g.Edges() {
		if e.Price != nil && e.Price.IsSymbolic() {
			e.Price = symbolic.Const(p)
		}
	}
}

func linearizeObjective(in Input, model map[string]float64) (constraint.LinExpr, error) {
	return objective.LinearizeAt(in.Graph, in.Routes, in.FlowVars, model)
}
