package wardropnet

import "sync/atomic"

// CloneEmpty returns a new Graph with the same vertices and color->k
// defaults but no edges, carrying over nextEdgeID so future AddEdge calls
// on the clone continue the same textual sequence (mirrors the teacher
// core.Graph.CloneEmpty contract).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextEdgeID, g.nextEdgeID)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for color, k := range g.colorK {
		clone.colorK[color] = k
	}
	return clone
}

// Clone returns a deep copy: vertices, edges (with their Price/Flow
// expressions, which are immutable values so sharing them is safe), and
// adjacency. Strategies that probe trial assignments (S2) clone the
// canonical graph before substituting symbolic prices (spec.md §5).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, e := range g.edges {
		ne := &Edge{
			ID: id, From: e.From, To: e.To, Key: e.Key, Color: e.Color,
			Capacity: e.Capacity, HasCapacity: e.HasCapacity,
			Price: e.Price, K: e.K, Flow: e.Flow,
		}
		clone.edges[id] = ne
		clone.ensureAdjacency(e.From, e.To)
		clone.adjacency[e.From][e.To][id] = struct{}{}
		if e.To != e.From {
			clone.ensureAdjacency(e.To, e.From)
			clone.adjacency[e.To][e.From][id] = struct{}{}
		}
		clone.byKey[[3]string{e.From, e.To, e.Key}] = id
		clone.byKey[[3]string{e.To, e.From, e.Key}] = id
	}
	return clone
}
