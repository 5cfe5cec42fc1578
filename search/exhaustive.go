package search

import (
	"slices"

	"github.com/katalvlaran/citypath/core"
)

// boundedWalker is the explicit state of one exhaustive search: the current
// simple path being extended and the incumbent (best complete path so far).
// Every recursive step reads and updates the same walker.
type boundedWalker struct {
	g     *core.Graph
	goal  string
	visit func(id string)

	// Current branch
	visited map[string]bool
	path    []string

	// Incumbent; bestDist is meaningful only when found is true.
	best     []string
	bestDist int64
	found    bool

	// overflowed records that some branch was cut because its distance
	// exceeded math.MaxInt64.
	overflowed bool
}

// ExhaustiveSearch returns a shortest path from start to goal by enumerating
// simple paths depth-first with branch-and-bound pruning.
//
// At each location:
//   - if it is goal and the accumulated distance is strictly below the
//     incumbent, it becomes the new incumbent;
//   - otherwise every unvisited neighbour is entered only if the extended
//     distance is strictly below the incumbent (or no incumbent exists yet).
//
// Pruning is sound because weights are non-negative, so partial distances never
// decrease along a path. Among equally short paths the first one found in
// adjacency order is kept. A branch whose distance would exceed math.MaxInt64
// is cut like a pruned one; if that leaves goal without a path although it is
// connected to start, ErrDistanceOverflow is returned.
//
// Complexity: worst case bounded by the number of simple paths, O(V!); keep
// graphs small. Memory O(V).
func (e *Engine) ExhaustiveSearch(start, goal string) (Result, error) {
	return e.run(ExhaustiveShortest, start, goal, func(res *Result) error {
		n := e.g.LocationCount()
		w := &boundedWalker{
			g:       e.g,
			goal:    goal,
			visit:   func(id string) { e.visit(res, id) },
			visited: make(map[string]bool, n),
			path:    make([]string, 0, n),
		}
		w.walk(start, 0)

		if w.found {
			res.Path, res.Distance = w.best, w.bestDist
			return nil
		}
		if w.overflowed && e.connected(start, goal) {
			return ErrDistanceOverflow
		}

		return nil // unreachable
	})
}

// walk enters cur with accumulated distance dist. It always restores visited
// and path before returning, the goal case included, so sibling branches see
// the state their parent had.
func (w *boundedWalker) walk(cur string, dist int64) {
	// 1. Enter
	w.visited[cur] = true
	w.path = append(w.path, cur)
	w.visit(cur)
	defer func() {
		// Backtrack
		delete(w.visited, cur)
		w.path = w.path[:len(w.path)-1]
	}()

	// 2. Goal: record a strictly better incumbent and stop this branch
	if cur == w.goal {
		if !w.found || dist < w.bestDist {
			w.best = slices.Clone(w.path)
			w.bestDist = dist
			w.found = true
		}

		return
	}

	// 3. Branch on unvisited neighbours inside the bound
	var (
		next int64
		ok   bool
	)
	for _, nb := range w.g.Neighbors(cur) {
		if w.visited[nb.To] {
			continue
		}
		if next, ok = addWeight(dist, nb.Weight); !ok {
			w.overflowed = true
			continue
		}
		if w.found && next >= w.bestDist {
			continue // prune
		}
		w.walk(nb.To, next)
	}
}
