// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "default rng must be nil")
	assert.NoError(t, cfg.err)
	assert.Equal(t, "Casa 1", cfg.idFn(0))
	assert.Equal(t, int64(defaultMinWeight), cfg.weightFn(nil))
	assert.Equal(t, defaultMinLinks, cfg.minLinks)
	assert.Equal(t, defaultMaxLinks, cfg.maxLinks)
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	exp := rand.New(rand.NewSource(123))
	cfg := newBuilderConfig(WithRand(exp))
	assert.Same(t, exp, cfg.rng)

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "WithSeed must be reproducible")

	assert.Panics(t, func() { WithRand(nil) })
}

func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithIDScheme(SymbolIDFn), WithIDScheme(DecimalIDFn))
	assert.Equal(t, "7", cfg.idFn(7), "last option wins")

	cfg = newBuilderConfig(WithWeightFn(ConstantWeightFn(9)))
	assert.Equal(t, int64(9), cfg.weightFn(nil))

	cfg = newBuilderConfig(WithLinkRange(1, 1))
	assert.Equal(t, 1, cfg.minLinks)
	assert.Equal(t, 1, cfg.maxLinks)

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
}

func TestOptionViolationsRecorded(t *testing.T) {
	t.Parallel()

	cases := map[string]BuilderOption{
		"link range inverted": WithLinkRange(4, 2),
		"link range zero":     WithLinkRange(0, 3),
		"weight range zero":   WithWeightRange(0, 5),
		"weight inverted":     WithWeightRange(5, 1),
	}
	for name, opt := range cases {
		opt := opt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := newBuilderConfig(opt)
			require.Error(t, cfg.err)
			assert.True(t, errors.Is(cfg.err, ErrOptionViolation))
		})
	}

	// Only the first violation is kept.
	cfg := newBuilderConfig(WithLinkRange(0, 0), WithWeightRange(0, 0))
	assert.Contains(t, cfg.err.Error(), "WithLinkRange")
}

func TestSampleIndicesDistinct(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	pool := make([]int, 10)
	for trial := 0; trial < 50; trial++ {
		got := sampleIndices(rng, pool, 4)
		require.Len(t, got, 4)
		seen := make(map[int]bool, 4)
		for _, j := range got {
			assert.True(t, j >= 0 && j < 10)
			assert.False(t, seen[j], "index %d drawn twice", j)
			seen[j] = true
		}
	}
}
