package dot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/citypath/core"
)

var (
	// ErrNilGraph is returned when Render is given a nil graph.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrPathNotInGraph indicates a highlighted path with an unknown location
	// or a hop that no edge joins.
	ErrPathNotInGraph = errors.New("dot: path does not follow the graph")
)

// Highlight attributes for path nodes and hop edges.
const (
	highlightColor = "red"
	highlightWidth = "2"
)

// Option configures Render.
type Option func(*options)

type options struct {
	name string
	path []string
}

func defaultOptions() options {
	return options{name: "citypath"}
}

// WithName sets the DOT graph name. Default: "citypath".
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithPath highlights path, typically search.Result.Path.
func WithPath(path []string) Option {
	return func(o *options) {
		o.path = append([]string(nil), path...)
	}
}

// Render returns g as an undirected DOT document with one node per location
// and one edge per catalogued edge.
func Render(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	edges := g.Edges()
	onPath, hops, err := highlights(g, edges, cfg.path)
	if err != nil {
		return "", err
	}

	out := gographviz.NewGraph()
	if err = out.SetName(quote(cfg.name)); err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	if err = out.SetDir(false); err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	for _, kv := range [][2]string{{"rankdir", "LR"}, {"nodesep", "0.5"}} {
		if err = out.AddAttr(out.Name, kv[0], kv[1]); err != nil {
			return "", fmt.Errorf("dot: graph attribute %s: %w", kv[0], err)
		}
	}

	for _, id := range g.Locations() {
		attrs := map[string]string{"label": quote(id), "shape": "ellipse"}
		if onPath[id] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = highlightWidth
		}
		if err = out.AddNode(out.Name, quote(id), attrs); err != nil {
			return "", fmt.Errorf("dot: location %q: %w", id, err)
		}
	}

	for i, e := range edges {
		attrs := map[string]string{"label": quote(strconv.FormatInt(e.Weight, 10))}
		if hops[i] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = highlightWidth
		}
		if err = out.AddEdge(quote(e.A), quote(e.B), false, attrs); err != nil {
			return "", fmt.Errorf("dot: edge %s–%s: %w", e.A, e.B, err)
		}
	}

	return out.String(), nil
}

// highlights returns the set of path locations and the catalogue indices of
// the edges the path walks. For parallel edges the lightest one wins, the
// earliest on ties.
func highlights(g *core.Graph, edges []core.Edge, path []string) (map[string]bool, map[int]bool, error) {
	onPath := make(map[string]bool, len(path))
	hops := make(map[int]bool, len(path))
	for i, id := range path {
		if !g.HasLocation(id) {
			return nil, nil, fmt.Errorf("%w: unknown location %q", ErrPathNotInGraph, id)
		}
		onPath[id] = true
		if i == 0 {
			continue
		}

		best := -1
		for j, e := range edges {
			joins := (e.A == path[i-1] && e.B == id) || (e.B == path[i-1] && e.A == id)
			if joins && (best < 0 || e.Weight < edges[best].Weight) {
				best = j
			}
		}
		if best < 0 {
			return nil, nil, fmt.Errorf("%w: no edge %q→%q", ErrPathNotInGraph, path[i-1], id)
		}
		hops[best] = true
	}

	return onPath, hops, nil
}

// dotEscaper escapes the only two characters that are special inside a DOT
// double-quoted string. Everything else, newlines and non-ASCII included, is
// kept verbatim.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote makes s a DOT quoted ID.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
