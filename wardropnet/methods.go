// File: methods.go
// Role: vertex/edge lifecycle, adjacency queries, and the color->k resolver.
// Concurrency: mutations take the write lock for their guarded map; reads
// take the matching read lock. Never holds both muVert and muEdgeAdj at once.
package wardropnet

import (
	"sort"
	"strconv"

	"github.com/flowmesh/wardrop/symbolic"
)

// AddVertex registers id if absent; idempotent.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id is a node of the graph.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all node IDs in sorted order (deterministic iteration,
// matching the teacher's stable-ordering convention for logs/tests).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	return "e" + strconv.FormatUint(g.nextEdgeID, 10)
}

func (g *Graph) ensureAdjacency(u, v string) {
	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[string]map[string]struct{})
	}
	if g.adjacency[u][v] == nil {
		g.adjacency[u][v] = make(map[string]struct{})
	}
}

// AddEdge inserts one parallel edge between from and to, auto-registering
// both endpoints as vertices. The Key used to disambiguate this edge among
// other parallels between the same pair defaults to the edge's Color; if
// that key is already taken for this (from,to) pair, "<color>#<n>" is used
// instead so (from,to,key) stays unique (spec.md §3).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return nil, err
	}
	if err := g.AddVertex(to); err != nil {
		return nil, err
	}

	e := &Edge{From: from, To: to, Flow: nil}
	for _, opt := range opts {
		opt(e)
	}
	if e.HasCapacity && e.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e.Key == "" {
		e.Key = e.Color
	}
	if g.keyTaken(from, to, e.Key) {
		suffix := 2
		for g.keyTaken(from, to, e.Key+"#"+strconv.Itoa(suffix)) {
			suffix++
		}
		e.Key = e.Key + "#" + strconv.Itoa(suffix)
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	g.ensureAdjacency(from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if to != from {
		g.ensureAdjacency(to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}
	g.byKey[[3]string{from, to, e.Key}] = e.ID
	g.byKey[[3]string{to, from, e.Key}] = e.ID

	return e, nil
}

func (g *Graph) keyTaken(u, v, key string) bool {
	_, ok := g.byKey[[3]string{u, v, key}]
	return ok
}

// EdgeByKey resolves the edge uniquely identified by (u, v, key).
func (g *Graph) EdgeByKey(u, v, key string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	id, ok := g.byKey[[3]string{u, v, key}]
	if !ok {
		return nil, false
	}
	return g.edges[id], true
}

// EdgesBetween returns every parallel edge between u and v, sorted by Key
// for deterministic Cartesian expansion in the route enumerator.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := g.adjacency[u][v]
	out := make([]*Edge, 0, len(ids))
	for id := range ids {
		out = append(out, g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Neighbors returns the distinct node IDs reachable from u via one edge,
// sorted for deterministic traversal order.
func (g *Graph) Neighbors(u string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[u]))
	for v := range g.adjacency[u] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge in the graph, sorted by ID for deterministic
// iteration (constraint construction relies on this for stable matrix
// column ordering).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ResolveK fills e.K from the graph's color->k default mapping when e.K is
// still zero (spec.md §3: "resolved at load time from a color->k mapping
// if not set per-edge"). A zero-valued, never-set K with no color default
// falls back to 1.
func (g *Graph) ResolveK(e *Edge) {
	if e.K != 0 {
		return
	}
	g.muVert.RLock()
	k, ok := g.colorK[e.Color]
	g.muVert.RUnlock()
	if ok {
		e.K = k
		return
	}
	e.K = 1
}

// MergeRoutesExtension copies every edge of ext into g, preserving Color,
// Capacity, Price, and K, and re-deriving Keys through the normal AddEdge
// collision-avoidance path (spec.md §6: "Optional routes-extension graph
// merged in as additional edges").
func (g *Graph) MergeRoutesExtension(ext *Graph) error {
	if ext == nil {
		return nil
	}
	for _, e := range ext.Edges() {
		opts := []EdgeOption{WithColor(e.Color), WithKey(e.Key)}
		if e.HasCapacity {
			opts = append(opts, WithCapacity(e.Capacity))
		}
		if e.Price != nil {
			opts = append(opts, WithPrice(e.Price))
		}
		if e.K != 0 {
			opts = append(opts, WithK(e.K))
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return err
		}
	}
	return nil
}

// AddPersonalEdge injects the synthetic fallback edge of spec.md §3/§4.1:
// a single "personal" mode edge with fixed attributes, priced so it is
// only attractive when no real route exists.
func (g *Graph) AddPersonalEdge(s, t string) (*Edge, error) {
	return g.AddEdge(s, t,
		WithKey("auto_"+s+"_"+t),
		WithColor("personal"),
		WithCapacity(500),
		WithPrice(symbolic.Const(100)),
		WithK(1),
	)
}
