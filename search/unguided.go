package search

// UnguidedSearch finds some path from start to goal with an iterative,
// stack-based depth-first search.
//
// Steps:
//  1. Push start and mark it visited.
//  2. Pop a location; if it is goal, rebuild the path from predecessors and stop.
//  3. Otherwise push every unvisited neighbour in adjacency order, marking it
//     visited and recording its predecessor at push time.
//  4. An empty stack means goal is unreachable.
//
// Because all neighbours are pushed before any is explored and the frontier is
// LIFO, the last-inserted edge of a location is explored first. The result is
// deterministic for a fixed graph but depends on edge insertion order and is
// not guaranteed shortest. Distance is computed with PathDistance, which fails
// with ErrDistanceOverflow when the route found weighs more than math.MaxInt64.
//
// Complexity: Time O(V+E), Memory O(V).
func (e *Engine) UnguidedSearch(start, goal string) (Result, error) {
	return e.run(AnyPath, start, goal, func(res *Result) error {
		n := e.g.LocationCount()
		frontier := newStack[string](n)
		visited := make(map[string]bool, n)
		parent := make(map[string]string, n)

		frontier.Push(start)
		visited[start] = true

		var cur string
		for frontier.Len() > 0 {
			cur = frontier.Pop()
			e.visit(res, cur)

			if cur == goal {
				path, err := reconstructPath(parent, start, goal)
				if err != nil {
					return err
				}
				dist, err := e.PathDistance(path)
				if err != nil {
					return err
				}
				res.Path, res.Distance = path, dist

				return nil
			}

			for _, nb := range e.g.Neighbors(cur) {
				if visited[nb.To] {
					continue
				}
				visited[nb.To] = true
				parent[nb.To] = cur
				frontier.Push(nb.To)
			}
		}

		return nil // frontier exhausted: unreachable
	})
}
