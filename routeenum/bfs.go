package routeenum

import "github.com/flowmesh/wardrop/wardropnet"

// hopDistances runs an unweighted breadth-first search from start, adapted
// from the teacher's bfs package walker (queue of frontier items, a
// visited set, depth tracked per node). It returns the minimum number of
// edges from start to every reachable node.
func hopDistances(g *wardropnet.Graph, start string) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		for _, nxt := range g.Neighbors(cur) {
			if _, seen := dist[nxt]; seen {
				continue
			}
			dist[nxt] = d + 1
			queue = append(queue, nxt)
		}
	}
	return dist
}

// reachable reports whether t is reachable from s within maxHops edges.
func reachable(g *wardropnet.Graph, s, t string, maxHops int) bool {
	if s == t {
		return true
	}
	d, ok := hopDistances(g, s)[t]
	return ok && d <= maxHops
}
