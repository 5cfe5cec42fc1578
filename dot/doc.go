// Package dot renders a *core.Graph as a Graphviz DOT document.
//
// Every catalogued edge becomes one undirected DOT edge labelled with its
// weight, so parallel edges and self-loops stay visible. WithPath highlights a
// search result: the locations on the path and, for each hop, the lightest
// edge joining the two locations.
//
//	out, err := dot.Render(g, dot.WithPath(res.Path))
//	// pipe out into `dot -Tsvg`
package dot
