package wardropnet

import (
	"sync"

	"github.com/flowmesh/wardrop/symbolic"
)

// DefaultCapacity is used for edges whose Capacity was never set (spec.md §3/§4.4 C2).
const DefaultCapacity = 500.0

// Edge is one parallel connection between two nodes, tagged with a
// transport mode (Color) and carrying capacity/price/congestion attributes.
//
// (From, To, Key) uniquely identifies one edge (spec.md §3 invariant); Key
// disambiguates parallel edges sharing the same (From, To) pair and
// defaults to Color when that is already unique for the pair.
type Edge struct {
	// ID is the internal map key, assigned sequentially ("e1", "e2", ...).
	ID string

	From, To string
	Key      string

	Color string

	// Capacity is non-negative; HasCapacity=false means "absent", and
	// DefaultCapacity applies wherever the spec calls for a concrete bound.
	Capacity    float64
	HasCapacity bool

	// Price is Const(p) when known, Sym(name) when the allocator must
	// introduce a symbolic price variable (spec.md §4.2).
	Price symbolic.Expr

	// K is the congestion coefficient; zero means "unresolved", to be
	// filled in from the graph's per-color default via ResolveK.
	K float64

	// Flow is always a Sym, allocated once by the symbolic variable
	// allocator and never replaced until the solution materializer
	// writes the concrete resolved value back as a Const.
	Flow symbolic.Expr
}

// Demand is an origin-destination pair with a required flow volume
// (spec.md §3). Invariant: D >= 0.
type Demand struct {
	S, T string
	D    float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithColorK seeds the color->k default mapping used by ResolveK for edges
// whose K was never set explicitly (spec.md §3 "resolved at load time from
// a color->k mapping if not set per-edge").
func WithColorK(defaults map[string]float64) GraphOption {
	return func(g *Graph) {
		for color, k := range defaults {
			g.colorK[color] = k
		}
	}
}

// EdgeOption configures an individual edge added via AddEdge.
type EdgeOption func(*Edge)

// WithColor sets the edge's transport-mode tag.
func WithColor(color string) EdgeOption { return func(e *Edge) { e.Color = color } }

// WithCapacity sets a concrete capacity.
func WithCapacity(cap float64) EdgeOption {
	return func(e *Edge) { e.Capacity, e.HasCapacity = cap, true }
}

// WithPrice sets a concrete or symbolic price expression directly,
// bypassing the allocator's "introduce Sym if absent" default.
func WithPrice(p symbolic.Expr) EdgeOption { return func(e *Edge) { e.Price = p } }

// WithK sets a concrete congestion coefficient, overriding color-based resolution.
func WithK(k float64) EdgeOption { return func(e *Edge) { e.K = k } }

// WithKey overrides the auto-derived parallel-edge disambiguator.
func WithKey(key string) EdgeOption { return func(e *Edge) { e.Key = key } }

// Graph is the in-memory multigraph transport network: undirected,
// always multi-edge, nodes are opaque strings.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency, and the
// (from,to,key) lookup index. nextEdgeID is a monotonic counter for
// textual edge IDs, carried over on Clone/CloneEmpty exactly as the
// teacher core.Graph carries it.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge // edge ID -> Edge

	// adjacency[u][v][edgeID] = struct{}{}; mirrored for v->u since undirected.
	adjacency map[string]map[string]map[string]struct{}

	// byKey[[3]string{u,v,key}] = edge ID, with both endpoint orders indexed.
	byKey map[[3]string]string

	colorK map[string]float64
}

// NewGraph creates an empty transport network.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
		byKey:     make(map[[3]string]string),
		colorK:    make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
