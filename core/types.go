// Package core defines the Graph, Neighbor and Edge types together with the
// sentinel errors returned by graph construction and lookup.
//
// Errors:
//
//	ErrEmptyLocationID  - location ID is the empty string.
//	ErrLocationNotFound - requested location does not exist.
//	ErrIndexOutOfRange  - requested index is outside 0..V-1.
//	ErrNegativeWeight   - edge weight is negative.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLocationID indicates that the provided location ID is empty.
	ErrEmptyLocationID = errors.New("core: location ID is empty")

	// ErrLocationNotFound indicates an operation referenced a location that was never registered.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrIndexOutOfRange indicates an index outside the dense 0..V-1 range.
	ErrIndexOutOfRange = errors.New("core: location index out of range")

	// ErrNegativeWeight indicates AddEdge was called with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Neighbor is one directed adjacency entry: the location reached and the
// weight of the edge used to reach it.
type Neighbor struct {
	// To is the adjacent location.
	To string

	// Weight is the distance of the edge.
	Weight int64
}

// Edge is one undirected connection as it was passed to AddEdge.
type Edge struct {
	// A and B are the endpoints in the order given to AddEdge.
	A, B string

	// Weight is the distance between A and B.
	Weight int64
}

// Graph is an undirected, weighted adjacency-list graph keyed by location.
//
// mu guards every field. Adjacency slices are append-only, and callers only ever
// receive copies.
type Graph struct {
	mu sync.RWMutex

	// Registry
	index     map[string]int // location → dense index
	locations []string       // dense index → location

	// Storage
	adjacency map[string][]Neighbor // location → neighbors in insertion order
	edges     []Edge                // edge catalog in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[string]int),
		adjacency: make(map[string][]Neighbor),
	}
}
