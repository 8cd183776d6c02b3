package routeenum

import "github.com/flowmesh/wardrop/wardropnet"

// Default tunables (spec.md §4.1).
const (
	DefaultMaxHops             = 4
	DefaultMaxRoutesPerDemand  = 6
)

// EdgeRef is one (u, v, key) triple identifying a single traversed edge
// within a route (spec.md §3).
type EdgeRef struct {
	U, V, Key string
}

// Route is an ordered edge sequence connecting one demand's origin to its
// destination.
type Route []EdgeRef

// Options configures the enumerator; Enumerate replaces a zero or negative
// field with its default (see DefaultOptions()).
type Options struct {
	MaxHops            int
	MaxRoutesPerDemand int
}

// DefaultOptions returns spec.md's defaults: MaxHops=4, MaxRoutesPerDemand=6.
func DefaultOptions() Options {
	return Options{MaxHops: DefaultMaxHops, MaxRoutesPerDemand: DefaultMaxRoutesPerDemand}
}

// Result is the per-demand route matrix R_ij of spec.md §3.
type Result struct {
	Routes [][]Route // Routes[i] is demand i's ordered candidate route list
}

func edgeRefFrom(e *wardropnet.Edge) EdgeRef {
	return EdgeRef{U: e.From, V: e.To, Key: e.Key}
}
