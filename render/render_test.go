package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeplan/builder"
	"github.com/katalvlaran/pipeplan/core"
	"github.com/katalvlaran/pipeplan/prim"
	"github.com/katalvlaran/pipeplan/render"
)

func triangle(t *testing.T) (*core.Graph, []core.Edge) {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("Casa 1", "Casa 2", 1))
	require.NoError(t, b.AddEdge("Casa 2", "Casa 3", 2))
	require.NoError(t, b.AddEdge("Casa 1", "Casa 3", 3))
	g := b.Build()
	mst, _, err := prim.Prim(g, "Casa 1")
	require.NoError(t, err)

	return g, mst
}

func TestRender_SVG(t *testing.T) {
	g, mst := triangle(t)
	var buf bytes.Buffer

	require.NoError(t, render.Render(&buf, g, mst, "Pipes & houses"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "Pipes &amp; houses")
	assert.Equal(t, len(mst), strings.Count(out, "stroke:red"), "one highlighted line per tree edge")
	assert.Equal(t, g.EdgeCount()-len(mst), strings.Count(out, "stroke:#9a9a9a"))
	assert.Equal(t, g.VertexCount(), strings.Count(out, "fill:lightblue"))
	for _, v := range g.Vertices() {
		assert.Contains(t, out, ">"+v+"<")
	}
}

func TestRender_SeededFigureReproducible(t *testing.T) {
	g, err := builder.Generate(20, builder.WithSeed(3))
	require.NoError(t, err)
	mst, _, err := prim.Prim(g, "Casa 1")
	require.NoError(t, err)

	draw := func(seed int64) string {
		var buf bytes.Buffer
		require.NoError(t, render.Render(&buf, g, mst, "t", render.WithSeed(seed), render.WithIterations(15)))
		return buf.String()
	}
	first := draw(9)
	assert.Equal(t, first, draw(9))
	assert.Equal(t, first, draw(9))
	assert.NotEqual(t, first, draw(10))
}

func TestRender_SVGGenerated(t *testing.T) {
	g, err := builder.Generate(33, builder.WithSeed(42))
	require.NoError(t, err)
	mst, _, err := prim.Prim(g, "Casa 1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, g, mst, "Minimum Spanning Tree (Prim)", render.WithIterations(20)))
	assert.Equal(t, len(mst), strings.Count(buf.String(), "stroke:red"))
	assert.Equal(t, 33, strings.Count(buf.String(), "<circle"))
}

func TestRender_DOT(t *testing.T) {
	g, mst := triangle(t)
	var buf bytes.Buffer

	require.NoError(t, render.Render(&buf, g, mst, "Pipes", render.WithFormat(render.FormatDOT)))
	out := buf.String()

	assert.Contains(t, out, "graph pipeplan {")
	assert.Contains(t, out, `"Casa 1"`)
	assert.Contains(t, out, "--")
	assert.Equal(t, len(mst), strings.Count(out, "penwidth=3"))
	assert.Contains(t, out, "labelloc=t")
	assert.Contains(t, out, "fillcolor=lightblue")
}

func TestRender_EmptyTree(t *testing.T) {
	g, _ := triangle(t)
	var buf bytes.Buffer

	require.NoError(t, render.Render(&buf, g, nil, "no tree"))
	assert.NotContains(t, buf.String(), "stroke:red")
}

func TestRender_Errors(t *testing.T) {
	g, _ := triangle(t)
	var buf bytes.Buffer

	err := render.Render(&buf, nil, nil, "x")
	assert.ErrorIs(t, err, render.ErrNilGraph)

	bad := []core.Edge{{From: "Casa 1", To: "Casa 9", Weight: 1}}
	err = render.Render(&buf, g, bad, "x")
	assert.ErrorIs(t, err, render.ErrInconsistentInput)
	assert.Contains(t, err.Error(), "(Casa 1-Casa 9)")

	err = render.Render(&buf, g, nil, "x", render.WithIterations(0))
	assert.ErrorIs(t, err, render.ErrOptionViolation)

	err = render.Render(&buf, g, nil, "x", render.WithSize(10, 800))
	assert.ErrorIs(t, err, render.ErrOptionViolation)

	err = render.Render(&buf, g, nil, "x", render.WithFormat(render.Format(7)))
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestRenderFile(t *testing.T) {
	g, mst := triangle(t)
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "prim.svg")
	require.NoError(t, render.RenderFile(svgPath, g, mst, "t"))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))

	dotPath := filepath.Join(dir, "prim.gv")
	require.NoError(t, render.RenderFile(dotPath, g, mst, "t"))
	data, err = os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph pipeplan")

	forced := filepath.Join(dir, "figure.out")
	require.NoError(t, render.RenderFile(forced, g, mst, "t", render.WithFormat(render.FormatDOT)))

	err = render.RenderFile(filepath.Join(dir, "prim.png"), g, mst, "t")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	missing := filepath.Join(dir, "bad.svg")
	err = render.RenderFile(missing, g, []core.Edge{{From: "Casa 2", To: "Casa 7", Weight: 1}}, "t")
	assert.ErrorIs(t, err, render.ErrInconsistentInput)
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "no file on failure")
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]render.Format{
		"a.svg": render.FormatSVG,
		"a.SVG": render.FormatSVG,
		"a.dot": render.FormatDOT,
		"a.gv":  render.FormatDOT,
	}
	for path, want := range cases {
		got, err := render.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := render.FormatFromPath("a")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.Equal(t, "svg", render.FormatSVG.String())
	assert.Equal(t, "dot", render.FormatDOT.String())
}
