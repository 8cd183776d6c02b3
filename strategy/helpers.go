package strategy

import (
	"github.com/flowmesh/wardrop/constraint"
)

func buildAmbientConstraints(in Input) []constraint.Atom {
	var atoms []constraint.Atom
	atoms = append(atoms, constraint.BuildC1(in.Graph, in.Routes, in.FlowVars)...)
	atoms = append(atoms, constraint.BuildC2(in.Graph)...)
	atoms = append(atoms, constraint.BuildC3(in.Env, in.Demands, in.Routes, in.FlowVars)...)
	return atoms
}

func buildGates(in Input) ([]constraint.RouteGate, error) {
	return constraint.BuildWardropGates(in.Graph, in.Demands, in.Routes, in.FlowVars)
}

func fallbackAtoms(gates []constraint.RouteGate) []constraint.Atom {
	return constraint.BuildFallbackC4(gates)
}
