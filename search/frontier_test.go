package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_LIFO(t *testing.T) {
	s := newStack[string](0)
	s.Push("A")
	s.Push("B")
	s.Push("C")
	require.Equal(t, 3, s.Len())

	assert.Equal(t, "C", s.Pop())
	assert.Equal(t, "B", s.Pop())
	s.Push("D")
	assert.Equal(t, "D", s.Pop())
	assert.Equal(t, "A", s.Pop())
	assert.Zero(t, s.Len())
}

func TestNodePQ_MinOrderWithDuplicates(t *testing.T) {
	pq := nodePQ{}
	heap.Init(&pq)
	for _, it := range []nodeItem{{"C", 10}, {"B", 5}, {"C", 8}, {"A", 0}} {
		heap.Push(&pq, it)
	}

	var got []nodeItem
	for pq.Len() > 0 {
		got = append(got, heap.Pop(&pq).(nodeItem))
	}
	assert.Equal(t, []nodeItem{{"A", 0}, {"B", 5}, {"C", 8}, {"C", 10}}, got)
}

func TestReconstructPath(t *testing.T) {
	parent := map[string]string{"B": "A", "C": "B"}

	path, err := reconstructPath(parent, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = reconstructPath(parent, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestReconstructPath_NotRootedAtStart(t *testing.T) {
	// Chain C←B←A but the search claims to have started at X.
	parent := map[string]string{"B": "A", "C": "B"}
	_, err := reconstructPath(parent, "X", "C")
	assert.ErrorIs(t, err, ErrBrokenPredecessorChain)

	// A loop must not spin forever.
	loop := map[string]string{"B": "C", "C": "B"}
	_, err = reconstructPath(loop, "A", "C")
	assert.ErrorIs(t, err, ErrBrokenPredecessorChain)
}
