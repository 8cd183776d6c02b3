package routeenum

import "github.com/flowmesh/wardrop/wardropnet"

// enumerateNodePaths walks every simple node path from s to t of length
// (edge count) at most maxHops, via backtracking DFS adapted from the
// teacher's dfs package (explicit visited set, push-before-recurse,
// pop-on-return). Neighbor order is the graph's sorted order, so traversal
// and therefore discovery order are both deterministic.
func enumerateNodePaths(g *wardropnet.Graph, s, t string, maxHops int) [][]string {
	var (
		out     [][]string
		visited = map[string]bool{s: true}
		path    = []string{s}
	)

	var walk func(cur string)
	walk = func(cur string) {
		if cur == t && len(path) > 1 {
			found := make([]string, len(path))
			copy(found, path)
			out = append(out, found)
			return
		}
		if len(path)-1 >= maxHops {
			return
		}
		for _, nxt := range g.Neighbors(cur) {
			if visited[nxt] {
				continue
			}
			visited[nxt] = true
			path = append(path, nxt)
			walk(nxt)
			path = path[:len(path)-1]
			visited[nxt] = false
		}
	}
	walk(s)

	return out
}

// pruneToShortest keeps only the node paths whose length equals the
// minimum observed, deduplicating identical node sequences (spec.md §4.1
// step 3).
func pruneToShortest(paths [][]string) [][]string {
	if len(paths) == 0 {
		return nil
	}
	minLen := len(paths[0])
	for _, p := range paths[1:] {
		if len(p) < minLen {
			minLen = len(p)
		}
	}

	seen := make(map[string]bool)
	var out [][]string
	for _, p := range paths {
		if len(p) != minLen {
			continue
		}
		key := nodeSeqKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func nodeSeqKey(p []string) string {
	key := ""
	for i, n := range p {
		if i > 0 {
			key += ">"
		}
		key += n
	}
	return key
}

// expandToRoutes Cartesian-expands a node path into edge-level routes by
// taking the product of parallel edges between each consecutive node pair
// (spec.md §4.1 step 4). Order is deterministic: EdgesBetween returns
// parallels sorted by Key, and the product is built left-to-right.
func expandToRoutes(g *wardropnet.Graph, nodePath []string) []Route {
	if len(nodePath) < 2 {
		return nil
	}
	routes := []Route{{}}
	for i := 0; i+1 < len(nodePath); i++ {
		u, v := nodePath[i], nodePath[i+1]
		parallels := g.EdgesBetween(u, v)
		if len(parallels) == 0 {
			return nil
		}
		next := make([]Route, 0, len(routes)*len(parallels))
		for _, r := range routes {
			for _, e := range parallels {
				ext := make(Route, len(r), len(r)+1)
				copy(ext, r)
				ext = append(ext, edgeRefFrom(e))
				next = append(next, ext)
			}
		}
		routes = next
	}
	return routes
}
