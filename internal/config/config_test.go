package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "adjacent", cfg.Seating.Policy)
	assert.Equal(t, 1, cfg.Seating.Workers)
	assert.Equal(t, 100, cfg.Tiles.Days)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seating:\n  policy: los\n  workers: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "los", cfg.Seating.Policy)
	assert.Equal(t, 4, cfg.Seating.Workers)
	assert.Equal(t, 100, cfg.Tiles.Days)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Parse([]byte("tiles: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSimConfig(t *testing.T) {
	cfg, err := Parse([]byte("tiles:\n  days: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"days": "7"}, cfg.SimConfig("tiles"))
	assert.Equal(t, map[string]string{"policy": "adjacent", "workers": "1"}, cfg.SimConfig("seating"))
	assert.Nil(t, cfg.SimConfig("life"))
}

func TestParseKeepsExplicitZero(t *testing.T) {
	cfg, err := Parse([]byte("tiles:\n  days: 0\nseating:\n  workers: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Tiles.Days)
	assert.Equal(t, 0, cfg.Seating.Workers)
	assert.Equal(t, "adjacent", cfg.Seating.Policy)
	assert.Equal(t, map[string]string{"days": "0"}, cfg.SimConfig("tiles"))
}
