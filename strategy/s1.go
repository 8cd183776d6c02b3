package strategy

import "github.com/flowmesh/wardrop/objective"

// frankWolfeIterations bounds the linearize-and-resolve refinement loop S1
// runs once it has an initial feasible point: objective.Evaluate's bilinear
// term is frozen at the current model, the context is re-solved against
// that linear proxy, and the loop stops early once the objective value
// stops improving (spec.md §5's "bounded iteration, no suspension points").
const frankWolfeIterations = 5

const frankWolfeEpsilon = 1e-3

// S1 is the vanilla optimize strategy of spec.md §4.6: scope constraints,
// minimize the total-system-cost objective, check.
func S1(in Input) Result {
	in.Ctx.Push()
	defer in.Ctx.Pop()

	if err := scopeFullWardrop(in); err != nil {
		return Result{}
	}

	model, ok := in.Ctx.Check()
	if !ok {
		return Result{}
	}

	best, err := objective.Evaluate(in.Graph, in.Routes, in.FlowVars, model)
	if err != nil {
		return Result{Model: model, Solved: true}
	}

	for iter := 0; iter < frankWolfeIterations; iter++ {
		lin, err := objective.LinearizeAt(in.Graph, in.Routes, in.FlowVars, model)
		if err != nil {
			break
		}
		next, ok := in.Ctx.CheckMinimize(lin)
		if !ok {
			break
		}
		val, err := objective.Evaluate(in.Graph, in.Routes, in.FlowVars, next)
		if err != nil {
			break
		}
		model = next
		if best-val < frankWolfeEpsilon {
			best = val
			break
		}
		best = val
	}

	return Result{Model: model, Solved: true}
}
