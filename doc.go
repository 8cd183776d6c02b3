// Package wardrop assembles the Wardrop equilibrium feasibility-search
// engine: a transportation network (wardropnet), a route enumerator
// (routeenum), a symbolic environment and variable allocator
// (symbolic, symballoc), a route cost/price builder (costexpr), a
// constraint context (constraint), a total-system-cost objective
// (objective), five solving strategies (strategy), and a solution
// materializer (solution).
//
// Solve is the single entry point most callers need; the subpackages stay
// independently usable for callers that want to drive the pipeline by
// hand (e.g. running more than one strategy against the same Context).
package wardrop
