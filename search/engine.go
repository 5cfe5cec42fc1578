package search

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// Engine runs searches over a single graph. It holds no per-search state and
// never mutates the graph, so one Engine can serve any number of searches.
type Engine struct {
	g    *core.Graph
	opts options
}

// New returns an Engine bound to g.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{g: g, opts: cfg}, nil
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *core.Graph { return e.g }

// Search runs algorithm alg from start to goal.
//
// Errors:
//   - ErrUnknownAlgorithm if alg is not one of Algorithms().
//   - ErrUnknownLocation if start or goal is not registered.
//   - ErrBrokenPredecessorChain if reconstruction fails (a defect).
//   - ErrDistanceOverflow if the path found, or every path, weighs more than
//     math.MaxInt64.
//
// An unreachable goal is reported as an empty Result.Path with a nil error.
func (e *Engine) Search(alg Algorithm, start, goal string) (Result, error) {
	switch alg {
	case AnyPath:
		return e.UnguidedSearch(start, goal)
	case ExhaustiveShortest:
		return e.ExhaustiveSearch(start, goal)
	case DijkstraOptimal:
		return e.OptimalSearch(start, goal)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// validate fails explicitly when either endpoint is not a registered location.
func (e *Engine) validate(start, goal string) error {
	if !e.g.HasLocation(start) {
		return fmt.Errorf("%w: start %q", ErrUnknownLocation, start)
	}
	if !e.g.HasLocation(goal) {
		return fmt.Errorf("%w: goal %q", ErrUnknownLocation, goal)
	}

	return nil
}

// run validates the endpoints, then times body. The clock is read
// immediately before and after body so validation is not measured.
func (e *Engine) run(alg Algorithm, start, goal string, body func(res *Result) error) (Result, error) {
	if err := e.validate(start, goal); err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: alg, Start: start, Goal: goal}
	began := e.opts.clock()
	err := body(&res)
	res.Elapsed = e.opts.clock().Sub(began)
	if err != nil {
		return Result{}, fmt.Errorf("search: %s %q→%q: %w", alg, start, goal, err)
	}
	if !res.Reachable() {
		res.Path, res.Distance = nil, 0
	}

	return res, nil
}

// visit counts an expansion and fires the OnVisit hook.
func (e *Engine) visit(res *Result, id string) {
	res.Expanded++
	if e.opts.onVisit != nil {
		e.opts.onVisit(id)
	}
}
