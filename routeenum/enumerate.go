package routeenum

import "github.com/flowmesh/wardrop/wardropnet"

// Enumerate produces the route matrix R_ij for every demand against g,
// mutating g in place whenever a demand has no reachable path: a synthetic
// personal edge is injected and becomes that demand's sole route (spec.md
// §3, §4.1 step 5). A demand with either endpoint absent from g is
// skipped entirely — no synthetic edge, no route, matching spec.md §7's
// "graph-demand mismatch" policy and scenario 2 of spec.md §8.
//
// Complexity: O(D * V^MaxHops) worst case for the DFS path search per
// demand, bounded in practice by MaxHops=4 and sparse real networks.
func Enumerate(g *wardropnet.Graph, demands []wardropnet.Demand, opts Options) Result {
	if opts.MaxHops <= 0 {
		opts.MaxHops = DefaultMaxHops
	}
	if opts.MaxRoutesPerDemand <= 0 {
		opts.MaxRoutesPerDemand = DefaultMaxRoutesPerDemand
	}

	res := Result{Routes: make([][]Route, len(demands))}
	for i, d := range demands {
		res.Routes[i] = enumerateOne(g, d, opts)
	}
	return res
}

func enumerateOne(g *wardropnet.Graph, d wardropnet.Demand, opts Options) []Route {
	if !g.HasVertex(d.S) || !g.HasVertex(d.T) {
		return nil
	}

	var routes []Route
	if reachable(g, d.S, d.T, opts.MaxHops) {
		nodePaths := pruneToShortest(enumerateNodePaths(g, d.S, d.T, opts.MaxHops))
		for _, np := range nodePaths {
			routes = append(routes, expandToRoutes(g, np)...)
		}
	}

	if len(routes) == 0 {
		personal, err := g.AddPersonalEdge(d.S, d.T)
		if err != nil {
			// AddEdge only fails on empty IDs, already ruled out above,
			// or a key collision that AddEdge itself resolves by
			// suffixing — so this path is unreachable in practice.
			return nil
		}
		return []Route{{edgeRefFrom(personal)}}
	}

	if len(routes) > opts.MaxRoutesPerDemand {
		routes = routes[:opts.MaxRoutesPerDemand]
	}
	return routes
}
