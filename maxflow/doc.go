// Package maxflow adapts the teacher's Dinic max-flow (level graph +
// blocking flow) from operating over *core.Graph to a plain
// map[string]map[string]float64 capacity map, so strategy's capacity
// binary search (spec.md §4.6 S4) can cheaply test a *necessary* SAT
// condition before paying for a full constraint solve: build a
// super-source fanning into every demand's origin and a super-sink fed by
// every demand's destination, and if the max flow at a trial capacity
// falls short of total demand, that capacity cannot be feasible.
package maxflow
