package benchmark

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/citypath/search"
)

var (
	// ErrNilEngine is returned by NewRunner when no engine is given.
	ErrNilEngine = errors.New("benchmark: engine is nil")

	// ErrNoPairs is returned by Run when the pair list is empty.
	ErrNoPairs = errors.New("benchmark: no pairs to run")

	// ErrNoAlgorithms is returned by NewRunner when WithAlgorithms selected nothing.
	ErrNoAlgorithms = errors.New("benchmark: no algorithms selected")

	// ErrBadRepetitions is returned by NewRunner when repetitions < 1.
	ErrBadRepetitions = errors.New("benchmark: repetitions must be at least 1")
)

// Pair is one start/goal query.
type Pair struct {
	Start string `json:"start"`
	Goal  string `json:"goal"`
}

// String renders the pair as "Start-Goal".
func (p Pair) String() string { return p.Start + "-" + p.Goal }

// Option configures a Runner.
type Option func(*options)

type options struct {
	algorithms  []search.Algorithm
	repetitions int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		algorithms:  search.Algorithms(),
		repetitions: 1,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAlgorithms restricts the runner to algs, in the given order.
// Default: search.Algorithms().
func WithAlgorithms(algs ...search.Algorithm) Option {
	return func(o *options) {
		o.algorithms = append([]search.Algorithm(nil), algs...)
	}
}

// WithRepetitions runs each search n times; Elapsed becomes the mean and the
// path and distance come from the first run. Default: 1.
func WithRepetitions(n int) Option {
	return func(o *options) {
		o.repetitions = n
	}
}

// WithLogger sets the logger used for per-search debug records.
// Passing nil keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
