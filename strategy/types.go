package strategy

import (
	"github.com/flowmesh/wardrop/constraint"
	"github.com/flowmesh/wardrop/routeenum"
	"github.com/flowmesh/wardrop/symballoc"
	"github.com/flowmesh/wardrop/symbolic"
	"github.com/flowmesh/wardrop/wardropnet"
)

// Input bundles the five positional arguments spec.md §4.6 names
// ("graph, R_ij, f_R_vars, demands, solver") plus the symbolic environment
// every builder needs to declare T_i and resolve variable bounds.
type Input struct {
	Graph    *wardropnet.Graph
	Env      *symbolic.Env
	Routes   routeenum.Result
	FlowVars symballoc.RouteFlowVars
	Demands  []wardropnet.Demand
	Ctx      *constraint.Context
}

// Result is a strategy's outcome: Model is meaningful only when Solved.
type Result struct {
	Model  map[string]float64
	Solved bool
}

// Func is the common strategy signature; S1..S5 all satisfy it.
type Func func(in Input) Result
