// Package search implements three point-to-point path searches over a
// core.Graph and the helpers they share.
//
// What:
//
//   - AnyPath (UnguidedSearch): stack-based depth-first search. Neighbours are
//     pushed in adjacency order and marked visited at push time, so the path it
//     returns depends entirely on the order in which edges were inserted. It is
//     neither guaranteed shortest nor canonical across re-orderings; that is a
//     property of the algorithm, kept on purpose for comparison.
//   - ExhaustiveShortest (ExhaustiveSearch): recursive enumeration of simple
//     paths with branch-and-bound pruning. A branch is entered only while its
//     partial distance is strictly below the best complete path found so far.
//     Optimal for non-negative weights; combinatorial in the worst case.
//   - DijkstraOptimal (OptimalSearch): priority-queue search with lazy deletion
//     and early exit once the goal is settled.
//
// All three share one result shape (Result) and one validation policy:
//
//   - unknown start or goal → error wrapping ErrUnknownLocation;
//   - known but disconnected → empty Path, Distance 0, nil error;
//   - a predecessor chain that is not rooted at start → ErrBrokenPredecessorChain.
//   - connected, but only beyond math.MaxInt64 → ErrDistanceOverflow.
//
// Distance sums are checked: a branch that would exceed math.MaxInt64 is cut,
// so a negative or wrapped distance is never reported.
//
// Complexity:
//
//   - UnguidedSearch:   Time O(V+E),        Memory O(V)
//   - ExhaustiveSearch: Time O(V!) worst,   Memory O(V) recursion + path
//   - OptimalSearch:    Time O((V+E) log V), Memory O(V+E) (lazy heap)
//
// The engine never mutates the graph. Searches run synchronously; there is no
// cancellation, so keep graphs small when using ExhaustiveSearch.
package search
