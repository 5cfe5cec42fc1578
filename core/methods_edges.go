// File: methods_edges.go
// Role: Edge insertion and adjacency queries: AddEdge, Neighbors, HasEdge,
//       Distance, Edges, EdgeCount.
//
// Determinism:
//   - Neighbors() and Edges() return insertion order.
//   - HasEdge()/Distance() scan a's list front to back; the first match wins.
//
// Concurrency:
//   - AddEdge under mu write lock; every query under mu read lock.
package core

import "fmt"

// AddEdge connects a and b with an undirected edge of the given weight.
//
// Steps:
//  1. Validate IDs (ErrEmptyLocationID) and weight (ErrNegativeWeight).
//  2. Register a and b if absent.
//  3. Append b to a's list and a to b's list, both with weight.
//  4. Record the edge in the catalog.
//
// Duplicate edges are not detected: adding the same pair twice yields two
// parallel edges, both retrievable. A self-loop (a == b) appends two entries to
// a's own list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyLocationID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s–%s weight=%d", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(a)
	g.register(b)
	g.adjacency[a] = append(g.adjacency[a], Neighbor{To: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Neighbor{To: a, Weight: weight})
	g.edges = append(g.edges, Edge{A: a, B: b, Weight: weight})

	return nil
}

// Neighbors returns the adjacency entries of id in insertion order.
//
// Behavior highlights:
//   - An unknown id yields an empty slice, not an error.
//   - Parallel edges appear once per AddEdge call.
//   - The returned slice is a copy; mutating it does not affect the graph.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs := g.adjacency[id]
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out
}

// HasEdge reports whether at least one edge a–b exists.
// Undirected edges are mirrored, so HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Distance(a, b)

	return ok
}

// Distance returns the weight of the first a→b entry in a's adjacency list.
// The boolean is false when no such edge exists; the weight is then 0 and must
// not be used.
// Complexity: O(deg(a)).
func (g *Graph) Distance(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.scan(a, b)
}

// Edges returns every edge in the order it was added.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of AddEdge calls that succeeded, i.e. the
// number of undirected edges including parallel ones.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
