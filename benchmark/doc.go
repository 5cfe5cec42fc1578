// Package benchmark runs every search algorithm over a fixed list of
// start/goal pairs and collects the results into comparison tables.
//
// The runner is a read-only consumer of search.Engine and adds no algorithmic
// behavior of its own. Distances and paths in a Report are deterministic for a
// fixed graph; elapsed times are not and are reported descriptively.
//
// A Report offers:
//
//   - DistanceTable: distance per pair per algorithm ("-" when unreachable);
//   - TimeTable: elapsed milliseconds per pair per algorithm;
//   - Complexity: static time/space notes for each algorithm;
//   - Check: a list of violated expectations (optimal == exhaustive <= any-path,
//     correct endpoints, agreeing reachability);
//   - Render: all of the above as aligned text.
package benchmark
