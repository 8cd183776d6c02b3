// Package wardropnet defines the multigraph transport network and demand
// model that the feasibility engine operates on: opaque string nodes,
// parallel mode-tagged edges carrying capacity/price/congestion attributes,
// and the origin-destination demand list.
//
// Graph is always undirected and always permits parallel edges — unlike the
// teacher core.Graph this package is adapted from, there is no
// WithMultiEdges toggle because every transport network in this domain is a
// multigraph by construction (parallel modes between the same two nodes is
// the entire point of the formulation). The split sync.RWMutex pair
// (muVert, muEdgeAdj) and the Clone/CloneEmpty contracts are carried over
// unchanged from that lineage.
package wardropnet
