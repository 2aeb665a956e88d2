package generator

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/tile"
)

func TestEntropyQueue_LazyInvalidation(t *testing.T) {
	q := newEntropyQueue(4)
	q.push(0, 3.0)
	q.push(1, 1.0)
	q.push(2, 2.0)
	q.push(3, 2.0)
	q.push(1, 5.0) // supersedes 1.0

	none := func(int) bool { return false }
	var order []int
	for {
		id, ok := q.pop(none)
		if !ok {
			break
		}
		order = append(order, id)
	}
	assert.Equal(t, []int{2, 3, 0, 1}, order)
	assert.Equal(t, 0, q.size())
}

func TestEntropyQueue_SkipAndClear(t *testing.T) {
	q := newEntropyQueue(3)
	q.push(0, 0.1)
	q.push(1, 0.2)
	q.push(2, 0.3)

	id, ok := q.pop(func(c int) bool { return c == 0 })
	require.True(t, ok)
	assert.Equal(t, 1, id)

	q.clear()
	_, ok = q.pop(func(int) bool { return false })
	assert.False(t, ok)

	q.push(2, 9)
	id, ok = q.pop(func(int) bool { return false })
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestRun_Metrics(t *testing.T) {
	collapses := testutil.ToFloat64(collapsesTotal)
	removals := testutil.ToFloat64(removalsTotal)

	gen, err := New(mesh.Pentakis(), tile.DefaultCatalog(), WithSeed(12))
	require.NoError(t, err)
	res, err := gen.Run(context.Background())
	require.NoError(t, err)

	// The successful attempt collapses every cell once.
	assert.GreaterOrEqual(t, testutil.ToFloat64(collapsesTotal)-collapses, float64(len(res.Patterns)))
	assert.Greater(t, testutil.ToFloat64(removalsTotal), removals)
}

func TestRun_RecoversAfterContradiction(t *testing.T) {
	cat := tile.PatchworkCatalog()
	restarts := testutil.ToFloat64(restartsTotal)
	contradictions := testutil.ToFloat64(contradictionsTotal)

	// Roughly one patchwork attempt in five dead-ends on the pentakis; find
	// a seed whose run has to recover.
	var (
		gen *Generator
		res *Result
	)
	for seed := int64(1); seed <= 40; seed++ {
		g, err := New(mesh.Pentakis(), cat, WithSeed(seed), WithMaxAttempts(30))
		require.NoError(t, err)
		r, err := g.Run(context.Background())
		require.NoError(t, err, "seed %d", seed)
		if r.Contradictions > 0 {
			gen, res = g, r
			break
		}
	}
	require.NotNil(t, res, "no seed in 1..40 hit a contradiction")

	assert.Positive(t, res.Contradictions)
	assert.Equal(t, res.Contradictions+1, res.Attempts)
	require.Len(t, res.Patterns, 60)
	assert.True(t, gen.Grid().Done())
	require.NoError(t, gen.Grid().Consistent())
	assert.Equal(t, noCell, gen.failed)
	assert.Zero(t, gen.queue.size())

	for id, p := range res.Tiles() {
		assert.NotEqual(t, p.A, p.C, "cell %d", id)
	}

	assert.GreaterOrEqual(t, testutil.ToFloat64(restartsTotal)-restarts, float64(res.Attempts-1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(contradictionsTotal)-contradictions, float64(res.Contradictions))
}
