package benchmark

import (
	"fmt"
	"time"

	"github.com/katalvlaran/citypath/search"
)

// Runner executes the comparative analysis. It is stateless between runs.
type Runner struct {
	engine *search.Engine
	opts   options
}

// NewRunner returns a Runner that drives engine.
func NewRunner(engine *search.Engine, opts ...Option) (*Runner, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	if cfg.repetitions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRepetitions, cfg.repetitions)
	}

	return &Runner{engine: engine, opts: cfg}, nil
}

// Run executes every configured algorithm on every pair, sequentially and in
// order, and returns the collected Report.
//
// An unknown location in any pair aborts the run with an error wrapping
// search.ErrUnknownLocation; unreachable pairs are recorded normally.
func (r *Runner) Run(pairs []Pair) (*Report, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	rep := &Report{
		Algorithms: append([]search.Algorithm(nil), r.opts.algorithms...),
		Rows:       make([]Row, 0, len(pairs)),
	}
	for i, p := range pairs {
		row := Row{Pair: p, Results: make(map[search.Algorithm]search.Result, len(rep.Algorithms))}
		for _, alg := range rep.Algorithms {
			res, err := r.measure(alg, p)
			if err != nil {
				return nil, fmt.Errorf("benchmark: pair %d (%s): %w", i+1, p, err)
			}
			row.Results[alg] = res
			r.opts.logger.Debug("search finished",
				"pair", p.String(),
				"algorithm", alg.String(),
				"reachable", res.Reachable(),
				"distance", res.Distance,
				"expanded", res.Expanded,
				"elapsed", res.Elapsed,
			)
		}
		rep.Rows = append(rep.Rows, row)
	}
	r.opts.logger.Info("benchmark finished", "pairs", len(pairs), "algorithms", len(rep.Algorithms))

	return rep, nil
}

// measure runs alg on p the configured number of times.
func (r *Runner) measure(alg search.Algorithm, p Pair) (search.Result, error) {
	first, err := r.engine.Search(alg, p.Start, p.Goal)
	if err != nil {
		return search.Result{}, err
	}
	total := first.Elapsed
	for i := 1; i < r.opts.repetitions; i++ {
		res, err := r.engine.Search(alg, p.Start, p.Goal)
		if err != nil {
			return search.Result{}, err
		}
		total += res.Elapsed
	}
	first.Elapsed = total / time.Duration(r.opts.repetitions)

	return first, nil
}
