// Package config loads the datamapper tool configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"datamapper/internal/mapping"
	"datamapper/internal/resolve"
	"datamapper/internal/template"
)

// Config is the root configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Resolution ResolutionConfig `yaml:"resolution"`
	Coverage   CoverageConfig   `yaml:"coverage"`
	Template   TemplateConfig   `yaml:"template"`
	Expression ExpressionConfig `yaml:"expression"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// ResolutionConfig bounds reference resolution. Cycles are detected
// independently; the bound only stops chains that never repeat.
type ResolutionConfig struct {
	MaxDepth int `yaml:"max_depth"` // references followed per lookup, 0 = unlimited
}

// CoverageConfig bounds the mandatory-path walk.
type CoverageConfig struct {
	MaxDepth int `yaml:"max_depth"` // attribute levels, 0 = unlimited
}

// TemplateConfig bounds template synthesis.
type TemplateConfig struct {
	MaxDepth int `yaml:"max_depth"` // element levels, 0 = unlimited
}

// ExpressionConfig configures expression compilation.
type ExpressionConfig struct {
	PathSeparator string `yaml:"path_separator"` // joins element ids inside ${...}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := defaults()

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	// Keys absent from the file keep their defaults; an explicit 0 stays 0.
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("validate config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// applyEnvOverrides applies DATAMAPPER_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATAMAPPER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DATAMAPPER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("DATAMAPPER_RESOLUTION_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Resolution.MaxDepth = n
		}
	}
	if v := os.Getenv("DATAMAPPER_COVERAGE_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Coverage.MaxDepth = n
		}
	}
	if v := os.Getenv("DATAMAPPER_TEMPLATE_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Template.MaxDepth = n
		}
	}

	if v := os.Getenv("DATAMAPPER_EXPRESSION_PATH_SEPARATOR"); v != "" {
		cfg.Expression.PathSeparator = v
	}
}

// defaults returns the limits used when neither the file nor the
// environment sets them.
func defaults() Config {
	return Config{Resolution: ResolutionConfig{MaxDepth: resolve.DefaultMaxDepth}}
}

func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Expression.PathSeparator == "" {
		cfg.Expression.PathSeparator = "/"
	}
}

func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error, got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	if cfg.Resolution.MaxDepth < 0 {
		return fmt.Errorf("resolution.max_depth must not be negative")
	}
	if cfg.Coverage.MaxDepth < 0 {
		return fmt.Errorf("coverage.max_depth must not be negative")
	}
	if cfg.Template.MaxDepth < 0 {
		return fmt.Errorf("template.max_depth must not be negative")
	}

	return nil
}

// Resolver returns the type resolver described by c.
func (c *Config) Resolver() resolve.Resolver {
	return resolve.Resolver{MaxDepth: c.Resolution.MaxDepth}
}

// Checker returns the mapping checker described by c.
func (c *Config) Checker() mapping.Checker {
	return mapping.Checker{
		Coverage:  mapping.CoverageValidator{Resolver: c.Resolver(), MaxDepth: c.Coverage.MaxDepth},
		Separator: c.Expression.PathSeparator,
	}
}

// Synthesizer returns the template synthesizer described by c.
func (c *Config) Synthesizer() template.Synthesizer {
	return template.Synthesizer{Resolver: c.Resolver(), MaxDepth: c.Template.MaxDepth}
}
