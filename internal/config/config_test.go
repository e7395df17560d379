package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Cache.Capacity)
	assert.Equal(t, cache.PolicyLRU, cfg.CachePolicy())
	assert.Equal(t, 0.8, cfg.Analysis.FuzzyThreshold)
	assert.Equal(t, 8, cfg.Analysis.MaxPrimary)
	assert.Equal(t, 12, cfg.Analysis.MaxRelated)
	assert.Equal(t, 60, cfg.Program.DefaultDuration)
	assert.Equal(t, domain.ProgramNormal, cfg.DefaultDifficulty())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "grapple.db", filepath.Base(cfg.Database.Path))
}

func TestLoad_ReadsFileAndFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/grapple-test.db
cache:
  capacity: 10
  policy: freeze
analysis:
  fuzzy_threshold: 0.75
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/grapple-test.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Cache.Capacity)
	assert.Equal(t, cache.PolicyFreeze, cfg.CachePolicy())
	assert.Equal(t, 0.75, cfg.Analysis.FuzzyThreshold)
	assert.Equal(t, DefaultMaxPrimary, cfg.Analysis.MaxPrimary)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "cache:\n  capacity: 10\n")
	t.Setenv("GRAPPLE_CACHE_CAPACITY", "25")
	t.Setenv("GRAPPLE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Cache.Capacity)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRAPPLE_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("GRAPPLE_PROGRAM_DEFAULT_DIFFICULTY", "hard")
	t.Setenv("GRAPPLE_WORKERS", "2")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
	assert.Equal(t, domain.ProgramHard, cfg.DefaultDifficulty())
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadOptional_MissingFileFallsBackToEnv(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheCapacity, cfg.Cache.Capacity)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"policy", "cache:\n  policy: fifo\n", "cache.policy"},
		{"negative capacity", "cache:\n  capacity: -1\n", "cache.capacity"},
		{"threshold", "analysis:\n  fuzzy_threshold: 1.5\n", "fuzzy_threshold"},
		{"difficulty", "program:\n  default_difficulty: brutal\n", "default_difficulty"},
		{"log format", "log:\n  format: xml\n", "log"},
		{"workers", "workers: -3\n", "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
