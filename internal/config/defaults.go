package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"

	DefaultCacheCapacity = 100
	DefaultCachePolicy   = "lru"

	DefaultFuzzyThreshold = 0.8
	DefaultMaxPrimary     = 8
	DefaultMaxRelated     = 12
	DefaultMaxInputRunes  = 2000

	DefaultProgramDuration   = 60
	DefaultProgramDifficulty = "normal"

	DefaultWorkers = 4
)

// DefaultDir is ~/.grapple, or .grapple when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grapple"
	}
	return filepath.Join(home, ".grapple")
}

func DefaultDatabasePath() string { return filepath.Join(DefaultDir(), "grapple.db") }

func DefaultConfigPath() string { return filepath.Join(DefaultDir(), "config.yaml") }

// Default returns a fully populated, valid Config.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-value field in cfg. Fields already set are
// left unchanged so explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}
	if cfg.Cache.Policy == "" {
		cfg.Cache.Policy = DefaultCachePolicy
	}
	if cfg.Analysis.FuzzyThreshold == 0 {
		cfg.Analysis.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if cfg.Analysis.MaxPrimary == 0 {
		cfg.Analysis.MaxPrimary = DefaultMaxPrimary
	}
	if cfg.Analysis.MaxRelated == 0 {
		cfg.Analysis.MaxRelated = DefaultMaxRelated
	}
	if cfg.Analysis.MaxInputRunes == 0 {
		cfg.Analysis.MaxInputRunes = DefaultMaxInputRunes
	}
	if cfg.Program.DefaultDuration == 0 {
		cfg.Program.DefaultDuration = DefaultProgramDuration
	}
	if cfg.Program.DefaultDifficulty == "" {
		cfg.Program.DefaultDifficulty = DefaultProgramDifficulty
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
}

// registerKeys makes every key known to viper so AutomaticEnv can resolve
// it during Unmarshal even when no config file mentions it. Zero values
// leave the real defaulting to ApplyDefaults.
func registerKeys(v *viper.Viper) {
	for key, zero := range map[string]any{
		"database.path":              "",
		"log.level":                  "",
		"log.format":                 "",
		"cache.capacity":             0,
		"cache.policy":               "",
		"analysis.fuzzy_threshold":   0.0,
		"analysis.max_primary":       0,
		"analysis.max_related":       0,
		"analysis.max_input_runes":   0,
		"program.default_duration":   0,
		"program.default_difficulty": "",
		"workers":                    0,
	} {
		v.SetDefault(key, zero)
	}
}
