// Command citypath compares path-finding algorithms on a road network.
//
// Usage:
//
//	citypath locations
//	citypath search --from Istanbul --to Diyarbakir [--algo dijkstra]
//	citypath bench [--repeat 5]
//	citypath matrix
//	citypath dot [--from Izmir --to Trabzon] | dot -Tsvg > map.svg
//
// Every command reads the bundled Turkish network unless --dataset names a
// YAML or JSON file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
