// Package builder_test contains functional tests for the constructors:
// topology, counts, symmetry, determinism and error surfaces.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeplan/builder"
	"github.com/katalvlaran/pipeplan/core"
)

func TestGenerate_Neighborhood(t *testing.T) {
	g, err := builder.Generate(33, builder.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, 33, g.VertexCount())
	vs := g.Vertices()
	assert.Equal(t, "Casa 1", vs[0])
	assert.Equal(t, "Casa 33", vs[32])

	adj := g.Adjacency()
	for u, nbrs := range adj {
		_, self := nbrs[u]
		assert.False(t, self, "self-loop on %s", u)
		for v, w := range nbrs {
			assert.GreaterOrEqual(t, w, int64(1))
			assert.LessOrEqual(t, w, int64(20))
			back, ok := adj[v][u]
			require.True(t, ok, "missing reverse edge %s-%s", v, u)
			assert.Equal(t, w, back, "asymmetric weight on %s-%s", u, v)
		}
	}
	// Every house samples at least one foreign target (k ≥ 2, at most one is itself).
	for _, id := range vs {
		d, derr := g.Degree(id)
		require.NoError(t, derr)
		assert.Positive(t, d, "%s has no pipes", id)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(20, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Generate(20, builder.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestGenerate_SingleVertex(t *testing.T) {
	g, err := builder.Generate(1, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount(), "the only sample is the house itself")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := builder.Generate(0)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))

	_, err = builder.Generate(-3)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))

	_, err = builder.Generate(5, builder.WithLinkRange(3, 1))
	assert.True(t, errors.Is(err, builder.ErrOptionViolation))
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomNeighborhood(4))
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))

	_, err = builder.BuildGraph(nil, nil)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}

func TestConstructors_Functional(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("A", "B"))
				assert.True(t, g.HasEdge("C", "D"))
				assert.False(t, g.HasEdge("D", "A"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("E", "A"), "ring must close")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					d, err := g.Degree(id)
					require.NoError(t, err)
					assert.Equal(t, 3, d)
				}
			},
		},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
				tc.ctor,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, int64(tc.wantE), g.TotalWeight(), "unseeded weights default to 1")
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestConstructors_TooFew(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":     builder.Path(1),
		"Cycle(2)":    builder.Cycle(2),
		"Complete(0)": builder.Complete(0),
	} {
		_, err := builder.BuildGraph(nil, ctor)
		assert.True(t, errors.Is(err, builder.ErrTooFewVertices), name)
	}
}

func TestWeightRangeOption(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightRange(3, 3)},
		builder.Complete(5),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(3), e.Weight)
	}
}
