package search

import (
	"fmt"
	"math"
	"slices"
)

// PathDistance sums the edge weights along consecutive pairs of path, looking
// each hop up with core.Graph.Distance (first matching edge wins).
// It reports totals independently of the algorithm that produced path.
//
// An empty or single-location path has distance 0.
//
// Errors:
//   - ErrBrokenPath if some hop has no edge.
//   - ErrDistanceOverflow if the total exceeds math.MaxInt64.
//
// Complexity: O(Σ deg(path[i])).
func (e *Engine) PathDistance(path []string) (int64, error) {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, ok := e.g.Distance(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %q→%q", ErrBrokenPath, path[i], path[i+1])
		}
		if total, ok = addWeight(total, w); !ok {
			return 0, fmt.Errorf("%w: at %q→%q", ErrDistanceOverflow, path[i], path[i+1])
		}
	}

	return total, nil
}

// reconstructPath walks parent links back from goal and returns the path in
// start→goal order. The chain must end at start; a missing link or a loop is
// reported as ErrBrokenPredecessorChain.
func reconstructPath(parent map[string]string, start, goal string) ([]string, error) {
	path := []string{goal}
	for cur := goal; cur != start; {
		p, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrBrokenPredecessorChain, cur)
		}
		path = append(path, p)
		// A simple path has at most len(parent)+1 locations.
		if len(path) > len(parent)+1 {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenPredecessorChain, p)
		}
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// addWeight returns dist+w, or false when the sum would exceed math.MaxInt64.
// Both operands are non-negative.
func addWeight(dist, w int64) (int64, bool) {
	if w > math.MaxInt64-dist {
		return 0, false
	}

	return dist + w, true
}

// connected reports whether goal can be reached from start, ignoring weights.
// It separates "unreachable" from "reachable only beyond math.MaxInt64" after a
// search skipped overflowing sums.
func (e *Engine) connected(start, goal string) bool {
	frontier := newStack[string](e.g.LocationCount())
	seen := map[string]bool{start: true}
	frontier.Push(start)
	for frontier.Len() > 0 {
		cur := frontier.Pop()
		if cur == goal {
			return true
		}
		for _, nb := range e.g.Neighbors(cur) {
			if !seen[nb.To] {
				seen[nb.To] = true
				frontier.Push(nb.To)
			}
		}
	}

	return false
}
