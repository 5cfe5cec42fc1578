package search

// stack is a slice-backed LIFO frontier.
type stack[T any] struct {
	items []T
}

func newStack[T any](capacity int) *stack[T] {
	return &stack[T]{items: make([]T, 0, capacity)}
}

func (s *stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the most recently pushed element.
// It must not be called on an empty stack.
func (s *stack[T]) Pop() T {
	n := len(s.items) - 1
	v := s.items[n]
	var zero T
	s.items[n] = zero // release the reference for the GC
	s.items = s.items[:n]

	return v
}

func (s *stack[T]) Len() int { return len(s.items) }

// nodeItem is a location and the tentative distance it was queued with.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, for use with
// container/heap. Decrease-key is lazy: a shorter distance pushes a fresh
// item and the stale one is skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
