// Package routeenum enumerates, for each demand, the candidate routes a
// Wardrop assignment may split flow across (spec.md §4.1).
//
// For demand (s, t, d) a BFS distance pass (adapted from the teacher's bfs
// package) first checks that t is reachable from s within MaxHops; if so,
// it walks every simple node path from s to t no longer than MaxHops
// (backtracking DFS, adapted from the teacher's dfs package), keeps only
// the paths at the shortest node-length observed among them, and
// Cartesian-expands each surviving node path across its
// consecutive pairs' parallel edges. When s and t exist but no path
// survives, a synthetic personal edge is injected into the graph and
// becomes the demand's sole route. The final route list per demand is
// truncated to MaxRoutesPerDemand in discovery order, which is
// deterministic because node and edge iteration are both sorted.
package routeenum
