// Package config loads dietcheck settings from a YAML file, an optional .env
// file and DIETCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"

	FormatStyled = "styled"
	FormatText   = "text"
	FormatJSON   = "json"
)

// Config holds all dietcheck configuration.
type Config struct {
	Recorder RecorderConfig `yaml:"recorder"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RecorderConfig selects where submissions are appended.
type RecorderConfig struct {
	Backend string `yaml:"backend"`  // csv or sqlite
	LogPath string `yaml:"log_path"` // empty means the user config dir
	DBPath  string `yaml:"db_path"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // styled, text or json
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Recorder: RecorderConfig{Backend: BackendCSV},
		Output:   OutputConfig{Format: FormatStyled},
		Logging:  LoggingConfig{Level: "warn"},
	}
}

// Load reads the YAML file at path, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads defaults and the YAML file only. Environment overrides are not
// applied, so the result is safe to Save back.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. Variables that are already set win. A missing file is ignored.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DIETCHECK_BACKEND"); v != "" {
		c.Recorder.Backend = v
	}
	if v := os.Getenv("DIETCHECK_LOG"); v != "" {
		c.Recorder.LogPath = v
	}
	if v := os.Getenv("DIETCHECK_DB"); v != "" {
		c.Recorder.DBPath = v
	}
	if v := os.Getenv("DIETCHECK_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("DIETCHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate normalizes enumerated settings and rejects unknown values.
func (c *Config) Validate() error {
	c.Recorder.Backend = strings.ToLower(strings.TrimSpace(c.Recorder.Backend))
	switch c.Recorder.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("invalid recorder backend %q (use csv or sqlite)", c.Recorder.Backend)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case FormatStyled, FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (use styled, text or json)", c.Output.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	return nil
}
