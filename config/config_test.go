package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/config"
	"github.com/katalvlaran/tilewave/generator"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilewave.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "pentakis", cfg.Topology)
	assert.Equal(t, generator.DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Len(t, cfg.GeneratorOptions(nil), 4)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := write(t, `
seed: 42
max_attempts: 50
topology: bipyramid-5
store: {in_memory: true}
log: {level: debug, format: json}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 50, cfg.MaxAttempts)
	assert.Equal(t, "bipyramid-5", cfg.Topology)
	assert.Equal(t, config.Default().Noise, cfg.Noise)
	assert.True(t, cfg.Store.InMemory)

	sc := cfg.StoreConfig(nil)
	assert.True(t, sc.InMemory)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "seed: [1"))
	assert.Error(t, err)

	cases := map[string]string{
		"attempts": "max_attempts: 0",
		"noise":    "noise: 1.5",
		"topology": `topology: ""`,
		"store":    `store: {path: ""}`,
		"level":    "log: {level: loud}",
		"format":   "log: {format: xml}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestStoreConfig_Persistent(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Path = "/var/lib/tilewave"
	sc := cfg.StoreConfig(nil)
	assert.False(t, sc.InMemory)
	assert.Equal(t, "/var/lib/tilewave", sc.Path)
	assert.True(t, sc.SyncWrites)
}

func TestLog_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.Log{Level: "warn", Format: "json"}.Logger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "cell", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"cell":3`)

	buf.Reset()
	logger, err = config.Log{}.Logger(&buf)
	require.NoError(t, err)
	logger.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	_, err = config.Log{Level: "verbose"}.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
