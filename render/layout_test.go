package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pipeplan/builder"
	"github.com/katalvlaran/pipeplan/core"
)

func TestFitCanvas(t *testing.T) {
	pts := fitCanvas([]r2.Vec{{X: -3, Y: 2}, {X: 5, Y: 10}, {X: 1, Y: 6}}, 1000, 800)

	assert.Equal(t, point{X: 60, Y: 100}, pts[0])
	assert.Equal(t, point{X: 940, Y: 740}, pts[1])
	assert.Equal(t, point{X: 500, Y: 420}, pts[2])
}

func TestFitCanvas_Degenerate(t *testing.T) {
	pts := fitCanvas([]r2.Vec{{X: 4, Y: 4}}, 1000, 800)
	assert.Equal(t, []point{{X: 500, Y: 420}}, pts)
	assert.Empty(t, fitCanvas(nil, 1000, 800))
}

func TestLayoutGraph_InsideCanvas(t *testing.T) {
	b := core.NewBuilder()
	_ = b.AddEdge("a", "b", 1)
	_ = b.AddEdge("b", "c", 1)
	_ = b.AddEdge("c", "d", 1)
	_ = b.AddVertex("lonely")
	g := b.Build()

	c := newConfig(WithSize(400, 300), WithIterations(10))
	pts := layoutGraph(g, c)
	assert.Len(t, pts, 5)
	for _, p := range pts {
		assert.True(t, p.X >= 0 && p.X <= 400, "x=%d", p.X)
		assert.True(t, p.Y >= titleBand && p.Y <= 300, "y=%d", p.Y)
	}
}

func TestLayoutGraph_SeedReproducible(t *testing.T) {
	g, err := builder.Generate(12, builder.WithSeed(7))
	require.NoError(t, err)

	first := layoutGraph(g, newConfig(WithSeed(1), WithIterations(5)))
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, layoutGraph(g, newConfig(WithSeed(1), WithIterations(5))), "run %d", i)
	}
	assert.NotEqual(t, first, layoutGraph(g, newConfig(WithSeed(2), WithIterations(5))))
}

func TestDenseGraph(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("c", "a", 1))
	require.NoError(t, b.AddEdge("c", "b", 1))
	require.NoError(t, b.AddVertex("d"))
	dg := newDenseGraph(b.Build())

	// insertion order: c=0, a=1, b=2, d=3
	var from []int64
	for it := dg.From(0); it.Next(); {
		from = append(from, it.Node().ID())
	}
	assert.Equal(t, []int64{1, 2}, from)
	assert.True(t, dg.HasEdgeBetween(1, 0))
	assert.False(t, dg.HasEdgeBetween(1, 2))
	assert.Nil(t, dg.Edge(3, 0))
	assert.Nil(t, dg.Node(4))
	assert.Equal(t, 0, dg.From(3).Len())
	assert.Equal(t, 4, dg.Nodes().Len())
}
