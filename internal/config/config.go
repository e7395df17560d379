// Package config loads grapple settings from YAML and GRAPPLE_* environment
// variables.
package config

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/logging"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      logging.Config `mapstructure:"log"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Program  ProgramConfig  `mapstructure:"program"`
	// Workers bounds concurrent analyses in batch mode.
	Workers int `mapstructure:"workers"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type CacheConfig struct {
	Capacity int    `mapstructure:"capacity"`
	Policy   string `mapstructure:"policy"`
}

type AnalysisConfig struct {
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
	MaxPrimary     int     `mapstructure:"max_primary"`
	MaxRelated     int     `mapstructure:"max_related"`
	MaxInputRunes  int     `mapstructure:"max_input_runes"`
}

type ProgramConfig struct {
	DefaultDuration   int    `mapstructure:"default_duration"`
	DefaultDifficulty string `mapstructure:"default_difficulty"`
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path must be set"))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if c.Cache.Capacity < 1 {
		errs = append(errs, fmt.Errorf("cache.capacity must be >= 1, got %d", c.Cache.Capacity))
	}
	if _, err := cache.ParsePolicy(c.Cache.Policy); err != nil {
		errs = append(errs, fmt.Errorf("cache.policy: %w", err))
	}
	if c.Analysis.FuzzyThreshold <= 0 || c.Analysis.FuzzyThreshold > 1 {
		errs = append(errs, fmt.Errorf("analysis.fuzzy_threshold must be in (0, 1], got %g", c.Analysis.FuzzyThreshold))
	}
	if c.Analysis.MaxPrimary < 1 || c.Analysis.MaxRelated < 1 {
		errs = append(errs, errors.New("analysis.max_primary and analysis.max_related must be >= 1"))
	}
	if c.Analysis.MaxInputRunes < 1 {
		errs = append(errs, fmt.Errorf("analysis.max_input_runes must be >= 1, got %d", c.Analysis.MaxInputRunes))
	}
	if c.Program.DefaultDuration <= 0 {
		errs = append(errs, fmt.Errorf("program.default_duration must be > 0, got %d", c.Program.DefaultDuration))
	}
	if _, err := domain.ParseProgramDifficulty(c.Program.DefaultDifficulty); err != nil {
		errs = append(errs, fmt.Errorf("program.default_difficulty: %w", err))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

// CachePolicy returns the validated cache policy.
func (c *Config) CachePolicy() cache.Policy {
	p, err := cache.ParsePolicy(c.Cache.Policy)
	if err != nil {
		return cache.PolicyLRU
	}
	return p
}

func (c *Config) DefaultDifficulty() domain.ProgramDifficulty {
	d, err := domain.ParseProgramDifficulty(c.Program.DefaultDifficulty)
	if err != nil {
		return domain.ProgramNormal
	}
	return d
}
