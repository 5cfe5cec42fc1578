package benchmark_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/citypath/benchmark"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/search"
)

// ExampleReport_DistanceTable compares the three algorithms on a triangle
// where the direct road is longer than the detour.
func ExampleReport_DistanceTable() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("A", "C", 10)

	e, _ := search.New(g)
	r, _ := benchmark.NewRunner(e)
	rep, err := r.Run([]benchmark.Pair{{Start: "A", Goal: "C"}, {Start: "C", Goal: "A"}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = rep.DistanceTable().Render(os.Stdout)
	fmt.Println("violations:", len(rep.Check()))
	// Output:
	// Distance
	// #  Pair  any-path  exhaustive-shortest  dijkstra-optimal
	// 1  A-C   10        8                    8
	// 2  C-A   10        8                    8
	// violations: 0
}
