package wardropnet

import "errors"

// Sentinel errors for wardropnet graph operations.
var (
	// ErrEmptyVertexID indicates an empty node identifier was supplied.
	ErrEmptyVertexID = errors.New("wardropnet: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("wardropnet: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("wardropnet: edge not found")

	// ErrDuplicateKey indicates AddEdge was given a Key already used for this (u,v) pair.
	ErrDuplicateKey = errors.New("wardropnet: duplicate edge key for vertex pair")

	// ErrNegativeCapacity indicates a negative Capacity was supplied to AddEdge.
	ErrNegativeCapacity = errors.New("wardropnet: negative capacity")

	// ErrNegativeDemand indicates a Demand with d < 0 (spec.md invariant d >= 0).
	ErrNegativeDemand = errors.New("wardropnet: negative demand volume")

	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("wardropnet: graph is nil")
)
