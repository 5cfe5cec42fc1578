// Package core provides the weighted, undirected location graph that every
// search in citypath runs over.
//
// The Graph G = (V,E) is an adjacency-list graph keyed by location name:
//
//   - Locations are opaque, case-sensitive, non-empty strings. Each one gets a
//     dense integer index (0..V-1) the first time it is registered; indices are
//     never reassigned or reused.
//   - Edges are undirected and carry a non-negative int64 weight. AddEdge(a,b,w)
//     appends a→b to a's list and b→a to b's list, both with weight w.
//   - Adjacency lists keep insertion order. Parallel edges and self-loops are
//     preserved as given and are visible to every caller.
//   - A dense V×V DistanceMatrix can be derived on demand. Missing edges are
//     reported as absent cells, never as a numeric sentinel.
//
// Core Methods:
//
//	// Registration
//	AddLocation(id string) error              // O(1), idempotent
//	AddEdge(a, b string, weight int64) error  // O(1) amortized, auto-registers a and b
//
//	// Queries
//	HasLocation(id string) bool               // O(1)
//	Index(id string) (int, error)             // O(1)
//	Location(i int) (string, error)           // O(1)
//	Locations() []string                      // O(V), index order
//	Neighbors(id string) []Neighbor           // O(deg), insertion order
//	HasEdge(a, b string) bool                 // O(deg(a))
//	Distance(a, b string) (int64, bool)       // O(deg(a)), first matching edge
//	Edges() []Edge                            // O(E), insertion order
//
//	// Derived views
//	DistanceMatrix() *DistanceMatrix          // O(V²·deg)
//
// Errors:
//
//	ErrEmptyLocationID   – zero-length location ID
//	ErrLocationNotFound  – index lookup of an unregistered location
//	ErrIndexOutOfRange   – index outside 0..V-1
//	ErrNegativeWeight    – AddEdge with weight < 0
//
// The graph is meant to be built once and then shared read-only by the search
// engine. A single sync.RWMutex guards it so that read-only sharing across
// goroutines is also safe.
package core
