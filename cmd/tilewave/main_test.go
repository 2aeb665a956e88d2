package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/config"
	"github.com/katalvlaran/tilewave/tile"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// configFile writes a config whose store lives in a fresh temp dir.
func configFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tilewave.yaml")
	body := fmt.Sprintf("seed: 5\nstore: {path: %q}\nlog: {level: error}\n", filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

var savedID = regexp.MustCompile(`saved:\s+([0-9a-f-]{36})`)

func TestGenerate_SaveShowListDelete(t *testing.T) {
	cfg := configFile(t)

	out, _, err := run(t, "--config", cfg, "generate", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "topology: pentakis")
	assert.Contains(t, out, "cells:    60")
	m := savedID.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	id := m[1]

	out, _, err = run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "pentakis")

	out, _, err = run(t, "--config", cfg, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "id:       "+id)
	assert.Contains(t, out, "CELL")
	assert.Contains(t, out, "seed:     5")

	out, _, err = run(t, "--config", cfg, "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted: "+id)

	_, _, err = run(t, "--config", cfg, "show", id)
	assert.Error(t, err)
}

func TestGenerate_ExportAndShowFile(t *testing.T) {
	export := filepath.Join(t.TempDir(), "run.gob.zst")

	out, _, err := run(t, "--log-level", "error", "generate",
		"--topology", "bipyramid-4", "--seed", "3", "--export", export)
	require.NoError(t, err)
	assert.Contains(t, out, "cells:    8")
	assert.Contains(t, out, "exported: "+export)

	out, _, err = run(t, "show", "--file", export)
	require.NoError(t, err)
	assert.Contains(t, out, "topology: bipyramid-4")
	assert.Contains(t, out, "seed:     3")
}

func TestGenerate_TraceAndMetrics(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "error", "generate", "--topology", "bipyramid-3", "--trace", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, errOut, "generator.Generator.Run")
	assert.Contains(t, errOut, "tilewave_collapses_total")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--attempts", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "generate", "--topology", "no-such-mesh")
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "catalog")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "show")
	assert.Error(t, err)

	_, _, err = run(t, "delete", "not-a-uuid")
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	out, _, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns: 27")
	assert.Contains(t, out, "weight:   216")
	assert.Contains(t, out, "sea-sea-sea")
	assert.Contains(t, out, "bits")

	out, _, err = run(t, "catalog", "--catalog", "patchwork")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns: 18")
	assert.Contains(t, out, "weight:   132")
	assert.NotContains(t, out, "sea-sea-sea")
}

func TestGenerate_PatchworkCatalog(t *testing.T) {
	out, _, err := run(t, "--log-level", "error", "generate",
		"--catalog", "patchwork", "--attempts", "30", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "topology: pentakis")
	assert.Contains(t, out, "cells:    60")
	assert.Contains(t, out, "attempts: ")

	_, _, err = run(t, "generate", "--catalog", "no-such-catalog")
	assert.ErrorIs(t, err, tile.ErrUnknownCatalog)
}
