package generator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/generator"
	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

func TestRun_Pentakis(t *testing.T) {
	cat := tile.DefaultCatalog()
	gen, err := generator.New(mesh.Pentakis(), cat, generator.WithSeed(21))
	require.NoError(t, err)

	res, err := gen.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Patterns, 60)
	assert.GreaterOrEqual(t, res.Attempts, 1)
	assert.Equal(t, res.Attempts-1, res.Contradictions)
	assert.Equal(t, int64(21), res.Seed)
	assert.True(t, gen.Grid().Done())
	require.NoError(t, gen.Grid().Consistent())

	total := 0
	for _, n := range res.LabelCounts() {
		total += n
	}
	assert.Equal(t, 60*3, total)

	tiles := res.Tiles()
	require.Len(t, tiles, 60)
	for id := range tiles {
		assert.Equal(t, cat.At(res.Patterns[id]), tiles[id])
		assert.Equal(t, tiles[id], res.Pattern(id))
	}
}

func TestRun_SharedVerticesAgree(t *testing.T) {
	topo := mesh.Pentakis()
	gen, err := generator.New(topo, tile.DefaultCatalog(), generator.WithSeed(8))
	require.NoError(t, err)
	res, err := gen.Run(context.Background())
	require.NoError(t, err)

	for c, nb := range topo.Cells {
		p := res.Pattern(c)
		for _, s := range tile.Sides() {
			assert.True(t, p.IsCompatible(res.Pattern(nb[s]), s), "cell %d side %s", c, s)
		}
	}
}

func TestRun_DeterministicBySeed(t *testing.T) {
	run := func(seed int64) []int {
		gen, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog(), generator.WithSeed(seed))
		require.NoError(t, err)
		res, err := gen.Run(context.Background())
		require.NoError(t, err)
		return res.Patterns
	}

	assert.Equal(t, run(100), run(100))
	assert.NotEqual(t, run(100), run(101))
}

func TestRun_NoSolution(t *testing.T) {
	// A single pattern whose A and C corners differ can never meet itself.
	cat := tile.MustCatalog([]tile.Pattern{
		{Name: "odd", A: tile.Sea, B: tile.Ground, C: tile.City, Weight: 1},
	})
	topo, err := mesh.Bipyramid(3)
	require.NoError(t, err)

	gen, err := generator.New(topo, cat, generator.WithMaxAttempts(3))
	require.NoError(t, err)

	res, err := gen.Run(context.Background())
	assert.Nil(t, res)
	require.ErrorIs(t, err, generator.ErrNoSolution)
	assert.True(t, errors.Is(err, wfc.ErrContradiction))
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestRun_Cancelled(t *testing.T) {
	gen, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	gen, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog(), generator.WithLogger(logger))
	require.NoError(t, err)
	_, err = gen.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"attempt started"`)
	assert.Contains(t, out, `"msg":"collapsed"`)
	assert.Contains(t, out, `"msg":"run solved"`)
}

func TestRun_Rerun(t *testing.T) {
	gen, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog(), generator.WithSeed(3))
	require.NoError(t, err)

	first, err := gen.Run(context.Background())
	require.NoError(t, err)
	second, err := gen.Run(context.Background())
	require.NoError(t, err)

	// The RNG keeps advancing: a second run is a fresh, valid solution.
	require.Len(t, second.Patterns, len(first.Patterns))
	assert.NoError(t, gen.Grid().Consistent())
}

func TestOptions(t *testing.T) {
	assert.Panics(t, func() { generator.WithMaxAttempts(0) })

	_, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog(), generator.WithNoise(2))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)

	_, err = generator.New(mesh.Pentakis(), nil)
	assert.ErrorIs(t, err, wfc.ErrNilCatalog)

	_, err = generator.New(&mesh.Topology{}, tile.DefaultCatalog())
	assert.ErrorIs(t, err, wfc.ErrBadTopology)

	o := generator.DefaultOptions()
	assert.Equal(t, generator.DefaultMaxAttempts, o.MaxAttempts)
	assert.Equal(t, wfc.NoiseRange, o.Noise)
	assert.NotNil(t, o.Logger)

	generator.WithLogger(nil)(&o)
	assert.NotNil(t, o.Logger)
}
