// Package search defines the algorithm selector, the shared Result type,
// functional options and the sentinel errors of the search engine.
package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNilGraph is returned when New is given a nil *core.Graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownLocation indicates that start or goal is not registered in the graph.
	// It is distinct from an unreachable goal, which is not an error.
	ErrUnknownLocation = errors.New("search: unknown location")

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBrokenPath indicates that two consecutive locations of a path share no edge.
	ErrBrokenPath = errors.New("search: path uses a missing edge")

	// ErrBrokenPredecessorChain indicates that path reconstruction did not end at
	// the start location. This is an internal invariant violation, not an outcome.
	ErrBrokenPredecessorChain = errors.New("search: predecessor chain not rooted at start")

	// ErrDistanceOverflow indicates that goal is reachable but every path to it
	// weighs more than math.MaxInt64.
	ErrDistanceOverflow = errors.New("search: path distance overflows int64")
)

// Algorithm selects one of the three search strategies.
type Algorithm int

const (
	// AnyPath is the unguided stack-based DFS.
	AnyPath Algorithm = iota

	// ExhaustiveShortest is the pruned recursive DFS.
	ExhaustiveShortest

	// DijkstraOptimal is Dijkstra's algorithm.
	DijkstraOptimal
)

var algorithmNames = [...]string{
	AnyPath:            "any-path",
	ExhaustiveShortest: "exhaustive-shortest",
	DijkstraOptimal:    "dijkstra-optimal",
}

// aliases accepted by ParseAlgorithm besides the canonical names.
var algorithmAliases = map[string]Algorithm{
	"dfs":          AnyPath,
	"modified-dfs": ExhaustiveShortest,
	"dijkstra":     DijkstraOptimal,
}

// Algorithms returns every supported algorithm in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{AnyPath, ExhaustiveShortest, DijkstraOptimal}
}

// String returns the canonical name, e.g. "dijkstra-optimal".
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

func (a Algorithm) valid() bool { return a >= AnyPath && a <= DijkstraOptimal }

// ParseAlgorithm maps a canonical name or a short alias (dfs, modified-dfs,
// dijkstra) to an Algorithm. Matching ignores case and surrounding spaces.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if name == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one search.
type Result struct {
	// Algorithm that produced this result.
	Algorithm Algorithm

	// Start and Goal as requested.
	Start, Goal string

	// Path from Start to Goal inclusive; nil when Goal is unreachable.
	Path []string

	// Distance is the total weight of Path; 0 when unreachable.
	Distance int64

	// Elapsed is the wall-clock time spent inside the algorithm.
	Elapsed time.Duration

	// Expanded counts the locations the algorithm popped or entered.
	Expanded int
}

// Reachable reports whether a path was found.
func (r Result) Reachable() bool { return len(r.Path) > 0 }

// Option configures the Engine.
type Option func(*options)

type options struct {
	onVisit func(id string)  // called on every expansion
	clock   func() time.Time // elapsed-time source
}

func defaultOptions() options {
	return options{
		onVisit: nil,
		clock:   time.Now,
	}
}

// WithOnVisit installs fn as a hook called each time an algorithm expands a
// location (DFS pop, recursive entry, Dijkstra settle).
func WithOnVisit(fn func(id string)) Option {
	return func(o *options) {
		o.onVisit = fn
	}
}

// WithClock overrides the clock used to measure Elapsed.
// Passing nil keeps time.Now, whose readings carry a monotonic component.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}
