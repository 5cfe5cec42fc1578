// File: methods_locations.go
// Role: Location registration and registry queries.
//
// Determinism:
//   - Locations() returns IDs in index (insertion) order.
//
// Concurrency:
//   - Registration under mu write lock; queries under mu read lock.
package core

import "fmt"

// AddLocation registers id if it is not yet known (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyLocationID).
//   - Stage 2: Under mu write lock, assign the next dense index if id is new.
//
// Behavior highlights:
//   - Re-adding a known location is a no-op; its index never changes.
//   - A newly registered location starts with an empty adjacency list.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddLocation(id string) error {
	if id == "" {
		return ErrEmptyLocationID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.register(id)

	return nil
}

// register assigns id the next index. Caller must hold mu for writing.
func (g *Graph) register(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.locations)
	g.locations = append(g.locations, id)
	g.adjacency[id] = nil
}

// HasLocation reports whether id has been registered.
// Complexity: O(1).
func (g *Graph) HasLocation(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Index returns the dense index assigned to id.
//
// Errors:
//   - ErrLocationNotFound (wrapped with the ID) if id is not registered.
//
// Complexity: O(1).
func (g *Graph) Index(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	return i, nil
}

// Location returns the location registered at index i.
//
// Errors:
//   - ErrIndexOutOfRange if i < 0 or i >= LocationCount().
//
// Complexity: O(1).
func (g *Graph) Location(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.locations) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(g.locations))
	}

	return g.locations[i], nil
}

// Locations returns every registered location in index order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph) Locations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.locations))
	copy(out, g.locations)

	return out
}

// LocationCount returns the number of registered locations.
// Complexity: O(1).
func (g *Graph) LocationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.locations)
}
