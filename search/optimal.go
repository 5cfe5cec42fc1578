package search

import (
	"container/heap"

	"github.com/katalvlaran/citypath/core"
)

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g     *core.Graph
	start string
	goal  string
	visit func(id string)

	dist    map[string]int64  // tentative distance; a missing key means +∞
	prev    map[string]string // predecessor on the best known path
	settled map[string]bool   // distance is final
	pq      nodePQ            // lazy min-heap

	overflowed bool // some relaxation exceeded math.MaxInt64 and was skipped
}

// OptimalSearch returns a shortest path from start to goal with Dijkstra's
// algorithm.
//
// Steps:
//  1. dist[start] = 0; push start.
//  2. Pop the minimum item; skip it if already settled (stale entry).
//  3. Settle it; stop if it is goal.
//  4. Relax every unsettled neighbour v: if dist[u]+w < dist[v], update dist and
//     prev and push v again.
//  5. If goal was settled, rebuild the path and check it is rooted at start.
//
// Early exit is correct because with non-negative weights the first time goal
// is settled its distance is final. Infinity is represented by absence from
// dist, so no arithmetic is ever done on it. A relaxation whose sum would
// exceed math.MaxInt64 is skipped; if goal then stays unsettled although it is
// connected to start, ErrDistanceOverflow is returned.
//
// Complexity: Time O((V+E) log V), Memory O(V+E).
func (e *Engine) OptimalSearch(start, goal string) (Result, error) {
	return e.run(DijkstraOptimal, start, goal, func(res *Result) error {
		n := e.g.LocationCount()
		r := &runner{
			g:       e.g,
			start:   start,
			goal:    goal,
			visit:   func(id string) { e.visit(res, id) },
			dist:    make(map[string]int64, n),
			prev:    make(map[string]string, n),
			settled: make(map[string]bool, n),
			pq:      make(nodePQ, 0, n),
		}
		r.process()

		if !r.settled[goal] {
			if r.overflowed && e.connected(start, goal) {
				return ErrDistanceOverflow
			}
			return nil // unreachable
		}
		path, err := reconstructPath(r.prev, start, goal)
		if err != nil {
			return err
		}
		res.Path, res.Distance = path, r.dist[goal]

		return nil
	})
}

// process runs the main loop until goal is settled or the heap is empty.
func (r *runner) process() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.start, dist: 0})

	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		if r.settled[item.id] {
			continue // stale entry left by an earlier relaxation
		}
		r.settled[item.id] = true
		r.visit(item.id)

		if item.id == r.goal {
			return
		}
		r.relax(item.id)
	}
}

// relax tries to improve every unsettled neighbour of the settled location u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	var (
		nd int64
		ok bool
	)
	for _, nb := range r.g.Neighbors(u) {
		if r.settled[nb.To] {
			continue
		}
		if nd, ok = addWeight(du, nb.Weight); !ok {
			r.overflowed = true
			continue
		}
		if cur, ok := r.dist[nb.To]; ok && nd >= cur {
			continue // strict improvement only
		}
		r.dist[nb.To] = nd
		r.prev[nb.To] = u
		heap.Push(&r.pq, nodeItem{id: nb.To, dist: nd})
	}
}
