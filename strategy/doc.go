// Package strategy implements the five solving strategies of spec.md §4.6,
// each with the same shape: scope constraints on a constraint.Context,
// drive it toward SAT (optionally minimizing objective.Evaluate), and
// report a model plus a solved flag — strategies never panic or return an
// error for an UNSAT system, that is an ordinary, expected outcome.
//
// Every constraint.Context frame a strategy opens (S1 one per call, S2/S3
// one per price probe, S4/S5 one per S1 run) is popped before the strategy
// returns, on every exit path (spec.md §5), so a caller may run
// several strategies back to back against the same Context without
// leaking assertions between them.
package strategy
