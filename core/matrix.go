// File: matrix.go
// Role: Dense V×V distance matrix derived from the adjacency lists.
//
// The matrix is a reporting view only; the searches never read it.
// Absent edges are stored as a false presence bit, so no arithmetic can ever
// be performed on a "no edge" marker.
package core

import "fmt"

// DistanceMatrix is a dense, immutable V×V snapshot of direct edge weights.
// Row and column i both correspond to the location at index i in the source graph.
type DistanceMatrix struct {
	labels  []string       // index → location
	index   map[string]int // location → index
	weights []int64        // row-major weights, valid only where present is true
	present []bool         // row-major presence bits
}

// DistanceMatrix builds the dense distance matrix of g.
//
// Implementation:
//   - Stage 1: Under mu read lock, snapshot the location registry.
//   - Stage 2: For each (i,j) with i != j, resolve the cell with a neighbor scan
//     of location i; the first matching edge wins, as in Distance().
//   - Stage 3: Set every diagonal cell to 0 and mark it present.
//
// Complexity:
//   - Time O(V²·avg deg), Space O(V²).
func (g *Graph) DistanceMatrix() *DistanceMatrix {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.locations)
	m := &DistanceMatrix{
		labels:  make([]string, n),
		index:   make(map[string]int, n),
		weights: make([]int64, n*n),
		present: make([]bool, n*n),
	}
	copy(m.labels, g.locations)
	for id, i := range g.index {
		m.index[id] = i
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.present[i*n+j] = true // diagonal is zero by definition
				continue
			}
			if w, ok := g.scan(g.locations[i], g.locations[j]); ok {
				m.weights[i*n+j] = w
				m.present[i*n+j] = true
			}
		}
	}

	return m
}

// scan is Distance without locking. Caller must hold mu.
func (g *Graph) scan(a, b string) (int64, bool) {
	for _, nb := range g.adjacency[a] {
		if nb.To == b {
			return nb.Weight, true
		}
	}

	return 0, false
}

// Size returns V, the number of rows (and columns).
func (m *DistanceMatrix) Size() int { return len(m.labels) }

// Labels returns the location for every row in index order.
func (m *DistanceMatrix) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// At returns the cell (i,j). The boolean is false when there is no direct edge
// between the two locations or when i or j is out of range.
func (m *DistanceMatrix) At(i, j int) (int64, bool) {
	n := len(m.labels)
	if i < 0 || j < 0 || i >= n || j >= n {
		return 0, false
	}
	if !m.present[i*n+j] {
		return 0, false
	}

	return m.weights[i*n+j], true
}

// Between looks the cell up by location names.
//
// Errors:
//   - ErrLocationNotFound if a or b was not registered when the matrix was built.
func (m *DistanceMatrix) Between(a, b string) (int64, bool, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrLocationNotFound, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrLocationNotFound, b)
	}
	w, present := m.At(i, j)

	return w, present, nil
}
