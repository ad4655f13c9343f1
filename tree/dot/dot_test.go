package dot_test

import (
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pezwarinaan/id3"
	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
	"github.com/pezwarinaan/id3/tree/dot"
)

func parse(t *testing.T, s string) *gographviz.Graph {
	t.Helper()
	ast, err := gographviz.ParseString(s)
	require.NoError(t, err)
	g := gographviz.NewGraph()
	require.NoError(t, gographviz.Analyse(ast, g))
	return g
}

func TestRender(t *testing.T) {
	vt, err := id3.Grow(dataset.Vegetation())
	require.NoError(t, err)
	s, err := dot.Render("vegetation", vt)
	require.NoError(t, err)

	g := parse(t, s)
	assert.True(t, g.Directed)
	assert.Len(t, g.Nodes.Nodes, 9)
	assert.Len(t, g.Edges.Edges, 8)

	root := g.Nodes.Lookup["n0"]
	require.NotNil(t, root)
	assert.Equal(t, `"elevation"`, root.Attrs["label"])
	assert.Equal(t, "box", root.Attrs["shape"])

	leaf := g.Nodes.Lookup["n2"]
	require.NotNil(t, leaf)
	assert.Equal(t, `"conifer"`, leaf.Attrs["label"])
	assert.Equal(t, "ellipse", leaf.Attrs["shape"])

	labels := make(map[string]string)
	for _, e := range g.Edges.Edges {
		labels[e.Src+"->"+e.Dst] = e.Attrs["label"]
	}
	assert.Equal(t, `"high"`, labels["n0->n1"])
	assert.Equal(t, `"medium"`, labels["n0->n6"])
	assert.Equal(t, `"true"`, labels["n6->n8"])
}

func TestRenderLeaf(t *testing.T) {
	s, err := dot.Render("answer", tree.NewLeaf(feature.Int(42)))
	require.NoError(t, err)
	g := parse(t, s)
	assert.Len(t, g.Nodes.Nodes, 1)
	assert.Empty(t, g.Edges.Edges)
	assert.Equal(t, `"42"`, g.Nodes.Lookup["n0"].Attrs["label"])
}
