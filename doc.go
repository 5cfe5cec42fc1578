// Package citypath compares three ways of finding a route between two
// locations of a weighted, undirected road network.
//
// What is inside?
//
//	core/       - Graph: locations with dense indices, symmetric weighted edges,
//	              insertion-ordered adjacency, distance matrix view
//	search/     - Engine with three strategies behind one Search call:
//	              any-path (stack DFS), exhaustive-shortest (pruned recursive
//	              DFS), dijkstra-optimal (binary-heap Dijkstra)
//	benchmark/  - Runner over start/goal pairs; distance and time tables,
//	              complexity notes, consistency check
//	dataset/    - YAML/JSON loader and the bundled Turkish road network
//	dot/        - Graphviz DOT rendering with path highlighting
//	cmd/citypath - command-line front end
//
// Quick ASCII example:
//
//	    A ──5── B
//	     \      │
//	      10    3
//	        \   │
//	          C
//
//	any-path            A -> C       (10)
//	exhaustive-shortest A -> B -> C  (8)
//	dijkstra-optimal    A -> B -> C  (8)
//
// Install the CLI:
//
//	go install github.com/katalvlaran/citypath/cmd/citypath@latest
package citypath
