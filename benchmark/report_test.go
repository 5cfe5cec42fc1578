package benchmark_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/benchmark"
	"github.com/katalvlaran/citypath/search"
)

func result(alg search.Algorithm, dist int64, elapsed time.Duration, path ...string) search.Result {
	return search.Result{Algorithm: alg, Path: path, Distance: dist, Elapsed: elapsed}
}

// handReport builds a report directly, bypassing the runner.
func handReport(rows ...benchmark.Row) *benchmark.Report {
	return &benchmark.Report{Algorithms: search.Algorithms(), Rows: rows}
}

func TestDistanceAndTimeTables(t *testing.T) {
	rep := handReport(
		benchmark.Row{
			Pair: benchmark.Pair{Start: "A", Goal: "C"},
			Results: map[search.Algorithm]search.Result{
				search.AnyPath:            result(search.AnyPath, 10, 1500*time.Microsecond, "A", "C"),
				search.ExhaustiveShortest: result(search.ExhaustiveShortest, 8, 2*time.Millisecond, "A", "B", "C"),
				search.DijkstraOptimal:    result(search.DijkstraOptimal, 8, 250*time.Microsecond, "A", "B", "C"),
			},
		},
		benchmark.Row{
			Pair: benchmark.Pair{Start: "A", Goal: "Z"},
			Results: map[search.Algorithm]search.Result{
				search.AnyPath:         result(search.AnyPath, 0, time.Millisecond),
				search.DijkstraOptimal: result(search.DijkstraOptimal, 0, time.Millisecond),
			},
		},
	)

	dt := rep.DistanceTable()
	assert.Equal(t, []string{"#", "Pair", "any-path", "exhaustive-shortest", "dijkstra-optimal"}, dt.Header)
	assert.Equal(t, [][]string{
		{"1", "A-C", "10", "8", "8"},
		{"2", "A-Z", "-", "-", "-"},
	}, dt.Rows)

	tt := rep.TimeTable()
	assert.Equal(t, []string{"1", "A-C", "1.500", "2.000", "0.250"}, tt.Rows[0])
	assert.Equal(t, []string{"2", "A-Z", "1.000", "-", "1.000"}, tt.Rows[1])
}

func TestCheck_Violations(t *testing.T) {
	pair := benchmark.Pair{Start: "A", Goal: "C"}
	rep := handReport(benchmark.Row{
		Pair: pair,
		Results: map[search.Algorithm]search.Result{
			search.AnyPath:            result(search.AnyPath, 7, 0, "A", "C"),
			search.ExhaustiveShortest: result(search.ExhaustiveShortest, 9, 0, "A", "B"),
			search.DijkstraOptimal:    result(search.DijkstraOptimal, 8, 0, "A", "B", "C"),
		},
	})

	vs := rep.Check()
	require.Len(t, vs, 3)
	assert.Equal(t, search.ExhaustiveShortest, vs[0].Algorithm)
	assert.Contains(t, vs[0].Reason, "does not run from")
	assert.Equal(t, search.ExhaustiveShortest, vs[1].Algorithm)
	assert.Contains(t, vs[1].Reason, "differs from optimal 8")
	assert.Equal(t, search.AnyPath, vs[2].Algorithm)
	assert.Contains(t, vs[2].Reason, "below optimal")
	assert.Equal(t, pair, vs[2].Pair)
}

func TestCheck_ReachabilityDisagreement(t *testing.T) {
	rep := handReport(benchmark.Row{
		Pair: benchmark.Pair{Start: "A", Goal: "C"},
		Results: map[search.Algorithm]search.Result{
			search.AnyPath:         result(search.AnyPath, 0, 0),
			search.DijkstraOptimal: result(search.DijkstraOptimal, 8, 0, "A", "B", "C"),
		},
	})

	vs := rep.Check()
	require.Len(t, vs, 1)
	assert.Equal(t, search.DijkstraOptimal, vs[0].Algorithm)
	assert.Contains(t, vs[0].String(), "A-C [dijkstra-optimal]: reachable=true disagrees with any-path")
}

func TestComplexity(t *testing.T) {
	notes := benchmark.Complexity()
	require.Len(t, notes, 3)
	for i, alg := range search.Algorithms() {
		assert.Equal(t, alg, notes[i].Algorithm)
		assert.NotEmpty(t, notes[i].Time)
		assert.NotEmpty(t, notes[i].Space)
	}
	assert.Equal(t, "O((V + E) log V)", notes[2].Time)
}

func TestRender(t *testing.T) {
	r := newRunner(t, buildTriangle(t))
	rep, err := r.Run([]benchmark.Pair{{Start: "A", Goal: "C"}, {Start: "B", Goal: "Z"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Distance\n"))
	assert.Contains(t, out, "Time (ms)\n")
	assert.Contains(t, out, "Complexity\n")
	assert.NotContains(t, out, "Violations")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "#  Pair  any-path  exhaustive-shortest  dijkstra-optimal", lines[1])
	assert.Equal(t, "1  A-C   10        8                    8", lines[2])
	assert.Equal(t, "2  B-Z   -         -                    -", lines[3])
	assert.Contains(t, out, "1  A-C   1.000     1.000                1.000")
}

func TestRender_WithViolations(t *testing.T) {
	rep := handReport(benchmark.Row{
		Pair: benchmark.Pair{Start: "A", Goal: "C"},
		Results: map[search.Algorithm]search.Result{
			search.ExhaustiveShortest: result(search.ExhaustiveShortest, 9, 0, "A", "C"),
			search.DijkstraOptimal:    result(search.DijkstraOptimal, 8, 0, "A", "B", "C"),
		},
	})

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	assert.Contains(t, buf.String(), "Violations (1)\n  A-C [exhaustive-shortest]: distance 9 differs from optimal 8\n")
}
