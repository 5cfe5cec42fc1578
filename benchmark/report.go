package benchmark

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/citypath/search"
)

// Unreachable is the cell value used when an algorithm found no path.
const Unreachable = "-"

// Row holds every algorithm's result for one pair.
type Row struct {
	Pair    Pair
	Results map[search.Algorithm]search.Result
}

// Report is the outcome of Runner.Run. Rows keep the order of the input pairs;
// Algorithms keeps the configured order and drives column order.
type Report struct {
	Algorithms []search.Algorithm
	Rows       []Row
}

// Table is a titled grid of pre-formatted cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Violation names one broken expectation in a Report.
type Violation struct {
	Pair      Pair
	Algorithm search.Algorithm
	Reason    string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s]: %s", v.Pair, v.Algorithm, v.Reason)
}

// Note is the static complexity description of one algorithm.
type Note struct {
	Algorithm search.Algorithm
	Time      string
	Space     string
	Guarantee string
}

// Complexity returns the static notes for every algorithm, in canonical order.
func Complexity() []Note {
	return []Note{
		{Algorithm: search.AnyPath, Time: "O(V + E)", Space: "O(V)", Guarantee: "finds a path, not necessarily the shortest"},
		{Algorithm: search.ExhaustiveShortest, Time: "O(V!) worst case", Space: "O(V) recursion", Guarantee: "shortest, explores all simple paths under the bound"},
		{Algorithm: search.DijkstraOptimal, Time: "O((V + E) log V)", Space: "O(V)", Guarantee: "shortest for non-negative weights"},
	}
}

// DistanceTable reports the distance found by each algorithm for each pair.
func (rep *Report) DistanceTable() Table {
	return rep.table("Distance", func(res search.Result) string {
		if !res.Reachable() {
			return Unreachable
		}
		return strconv.FormatInt(res.Distance, 10)
	})
}

// TimeTable reports elapsed milliseconds with three decimals.
func (rep *Report) TimeTable() Table {
	return rep.table("Time (ms)", func(res search.Result) string {
		return strconv.FormatFloat(float64(res.Elapsed)/float64(time.Millisecond), 'f', 3, 64)
	})
}

func (rep *Report) table(title string, cell func(search.Result) string) Table {
	t := Table{
		Title:  title,
		Header: make([]string, 0, len(rep.Algorithms)+2),
		Rows:   make([][]string, 0, len(rep.Rows)),
	}
	t.Header = append(t.Header, "#", "Pair")
	for _, alg := range rep.Algorithms {
		t.Header = append(t.Header, alg.String())
	}
	for i, row := range rep.Rows {
		line := make([]string, 0, len(t.Header))
		line = append(line, strconv.Itoa(i+1), row.Pair.String())
		for _, alg := range rep.Algorithms {
			res, ok := row.Results[alg]
			if !ok {
				line = append(line, Unreachable)
				continue
			}
			line = append(line, cell(res))
		}
		t.Rows = append(t.Rows, line)
	}

	return t
}

// Check returns every violated expectation, in row order. An empty result
// means all paths have correct endpoints, reachability agrees across
// algorithms, and optimal == exhaustive <= any-path wherever those were run.
func (rep *Report) Check() []Violation {
	var out []Violation
	for _, row := range rep.Rows {
		out = append(out, checkRow(row, rep.Algorithms)...)
	}

	return out
}

func checkRow(row Row, algs []search.Algorithm) []Violation {
	var out []Violation
	add := func(alg search.Algorithm, format string, args ...any) {
		out = append(out, Violation{Pair: row.Pair, Algorithm: alg, Reason: fmt.Sprintf(format, args...)})
	}

	// 1) Endpoints and cross-algorithm reachability.
	var ref *search.Result
	for _, alg := range algs {
		res, ok := row.Results[alg]
		if !ok {
			continue
		}
		if res.Reachable() {
			if res.Path[0] != row.Pair.Start || res.Path[len(res.Path)-1] != row.Pair.Goal {
				add(alg, "path %v does not run from %q to %q", res.Path, row.Pair.Start, row.Pair.Goal)
			}
		}
		if ref == nil {
			r := res
			ref = &r
			continue
		}
		if res.Reachable() != ref.Reachable() {
			add(alg, "reachable=%t disagrees with %s", res.Reachable(), ref.Algorithm)
		}
	}

	// 2) Distance ordering between the algorithms that were run.
	opt, okOpt := row.Results[search.DijkstraOptimal]
	exh, okExh := row.Results[search.ExhaustiveShortest]
	dfs, okDFS := row.Results[search.AnyPath]
	if okOpt && okExh && opt.Reachable() && exh.Reachable() && opt.Distance != exh.Distance {
		add(search.ExhaustiveShortest, "distance %d differs from optimal %d", exh.Distance, opt.Distance)
	}
	if okOpt && okDFS && opt.Reachable() && dfs.Reachable() && dfs.Distance < opt.Distance {
		add(search.AnyPath, "distance %d is below optimal %d", dfs.Distance, opt.Distance)
	}
	if !okOpt && okExh && okDFS && exh.Reachable() && dfs.Reachable() && dfs.Distance < exh.Distance {
		add(search.AnyPath, "distance %d is below exhaustive %d", dfs.Distance, exh.Distance)
	}

	return out
}

// Render writes the distance table, the time table, the complexity notes and
// any violations to w.
func (rep *Report) Render(w io.Writer) error {
	for _, t := range []Table{rep.DistanceTable(), rep.TimeTable()} {
		if err := t.Render(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	notes := Table{Title: "Complexity", Header: []string{"Algorithm", "Time", "Space", "Guarantee"}}
	for _, n := range Complexity() {
		notes.Rows = append(notes.Rows, []string{n.Algorithm.String(), n.Time, n.Space, n.Guarantee})
	}
	if err := notes.Render(w); err != nil {
		return err
	}

	violations := rep.Check()
	if len(violations) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nViolations (%d)\n", len(violations)); err != nil {
		return err
	}
	for _, v := range violations {
		if _, err := fmt.Fprintf(w, "  %s\n", v); err != nil {
			return err
		}
	}

	return nil
}

// Render writes the table with aligned columns.
func (t Table) Render(w io.Writer) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, t.Title); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
