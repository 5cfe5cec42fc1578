package dot_test

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dataset"
	"github.com/katalvlaran/citypath/dot"
	"github.com/katalvlaran/citypath/search"
)

// buildTriangle: A–B(5), B–C(3), A–C(10).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, g.AddEdge("A", "C", 10))

	return g
}

// parse reads out back and fails the test if it is not valid DOT.
func parse(t *testing.T, out string) *gographviz.Graph {
	t.Helper()
	parsed, err := gographviz.Read([]byte(out))
	require.NoError(t, err, out)

	return parsed
}

// edgeBetween returns the parsed edges joining a and b, either way round.
func edgeBetween(g *gographviz.Graph, a, b string) []*gographviz.Edge {
	qa, qb := `"`+a+`"`, `"`+b+`"`
	var out []*gographviz.Edge
	for _, e := range g.Edges.Edges {
		if (e.Src == qa && e.Dst == qb) || (e.Src == qb && e.Dst == qa) {
			out = append(out, e)
		}
	}

	return out
}

func TestRender_NilGraph(t *testing.T) {
	_, err := dot.Render(nil)
	assert.ErrorIs(t, err, dot.ErrNilGraph)
}

func TestRender_Plain(t *testing.T) {
	out, err := dot.Render(buildTriangle(t), dot.WithName("triangle"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `graph "triangle"`), out)
	assert.NotContains(t, out, "->")

	g := parse(t, out)
	assert.False(t, g.Directed)
	assert.Len(t, g.Nodes.Nodes, 3)
	assert.Len(t, g.Edges.Edges, 3)

	ab := edgeBetween(g, "A", "B")
	require.Len(t, ab, 1)
	assert.Equal(t, `"5"`, ab[0].Attrs["label"])
	assert.NotContains(t, out, "red")
}

func TestRender_WithPath(t *testing.T) {
	g := buildTriangle(t)
	e, err := search.New(g)
	require.NoError(t, err)
	res, err := e.OptimalSearch("A", "C")
	require.NoError(t, err)

	out, err := dot.Render(g, dot.WithPath(res.Path))
	require.NoError(t, err)
	parsed := parse(t, out)

	for _, id := range []string{"A", "B", "C"} {
		n := parsed.Nodes.Lookup[`"`+id+`"`]
		require.NotNil(t, n, id)
		assert.Equal(t, "red", n.Attrs["color"], id)
	}
	assert.Equal(t, "red", edgeBetween(parsed, "A", "B")[0].Attrs["color"])
	assert.Equal(t, "red", edgeBetween(parsed, "B", "C")[0].Attrs["color"])
	assert.Empty(t, edgeBetween(parsed, "A", "C")[0].Attrs["color"])
}

func TestRender_ParallelEdgesHighlightLightest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("B", "A", 2))
	require.NoError(t, g.AddEdge("B", "B", 1))

	out, err := dot.Render(g, dot.WithPath([]string{"A", "B"}))
	require.NoError(t, err)
	parsed := parse(t, out)
	assert.Len(t, parsed.Edges.Edges, 3)

	for _, e := range edgeBetween(parsed, "A", "B") {
		if e.Attrs["label"] == `"2"` {
			assert.Equal(t, "red", e.Attrs["color"])
		} else {
			assert.Empty(t, e.Attrs["color"])
		}
	}
}

func TestRender_BadPath(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddLocation("Z"))

	_, err := dot.Render(g, dot.WithPath([]string{"A", "X"}))
	assert.ErrorIs(t, err, dot.ErrPathNotInGraph)

	_, err = dot.Render(g, dot.WithPath([]string{"A", "Z"}))
	assert.ErrorIs(t, err, dot.ErrPathNotInGraph)
	assert.Contains(t, err.Error(), `"A"→"Z"`)
}

func TestRender_QuotesOddLocationIDs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(`Say "hi"`, `C:\maps`, 1))
	require.NoError(t, g.AddEdge(`C:\maps`, "İzmir\u2028x", 2))

	out, err := dot.Render(g)
	require.NoError(t, err)
	assert.Contains(t, out, `"Say \"hi\""`)
	assert.Contains(t, out, `"C:\\maps"`)
	assert.Contains(t, out, "\"İzmir\u2028x\"")
	assert.NotContains(t, out, `\u2028`)
	assert.NotContains(t, out, `\u0130`)

	parsed := parse(t, out)
	assert.Len(t, parsed.Nodes.Nodes, 3)
	assert.Len(t, parsed.Edges.Edges, 2)
}

func TestRender_DefaultDataset(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)
	g, err := d.Graph()
	require.NoError(t, err)

	out, err := dot.Render(g, dot.WithName(d.Name))
	require.NoError(t, err)
	parsed := parse(t, out)
	assert.Len(t, parsed.Nodes.Nodes, 17)
	assert.Len(t, parsed.Edges.Edges, 88)
}
