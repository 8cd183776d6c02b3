package wardrop

import (
	"errors"

	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/solution"
	"github.com/flowmesh/wardrop/strategy"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardroplog"
	"github.com/flowmesh/wardrop/wardropnet"
)

func newContext(env *symbolic.Env) *constraint.Context {
	return constraint.NewContext(env, constraint.WithLogger(wardroplog.Nop()))
}

// ErrUnsolved indicates the chosen strategy reported UNSAT; it is an
// ordinary, expected outcome, not a sign of a malformed session.
var ErrUnsolved = errors.New("wardrop: strategy reported UNSAT")

// Options configures a Solve call.
type Options struct {
	RouteOptions routeenum.Options
	Strategy     strategy.Func
}

// DefaultOptions returns routeenum.DefaultOptions() paired with strategy.S1.
func DefaultOptions() Options {
	return Options{RouteOptions: routeenum.DefaultOptions(), Strategy: strategy.S1}
}

// Solve runs the full pipeline of spec.md §2 against g and demands: route
// enumeration, variable allocation, the chosen strategy, and materialization.
// On UNSAT it returns ErrUnsolved; g is left exactly as the strategy left it
// (S4/S5 may have mutated capacities even on a failed final probe, matching
// spec.md §5's "graph is mutated in place" contract; S2/S3 write prices back
// only when they succeed).
func Solve(g *wardropnet.Graph, demands []wardropnet.Demand, opts Options) (solution.Solution, error) {
	if opts.Strategy == nil {
		opts = DefaultOptions()
	}

	routes := routeenum.Enumerate(g, demands, opts.RouteOptions)
	env := symbolic.NewEnv()
	flowVars := symballoc.Allocate(env, g, routes)

	in := strategy.Input{
		Graph:    g,
		Env:      env,
		Routes:   routes,
		FlowVars: flowVars,
		Demands:  demands,
	}
	in.Ctx = newContext(env)

	res := opts.Strategy(in)
	if !res.Solved {
		return solution.Solution{}, ErrUnsolved
	}
	return solution.Materialize(g, routes, flowVars, res.Model)
}
