// Package config provides unified configuration loading for cruisecheck.
// It supports loading from YAML files and environment variables.
// With no file and no environment overrides, Default reproduces the plain
// scenario: info logging, an in-memory mock bus and a time-seeded target
// speed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvandessel/cruisecheck/internal/constants"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config contains all cruisecheck configuration settings.
type Config struct {
	// Logging contains settings for operational and event logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Store selects the signal store backend.
	Store StoreConfig `json:"store" yaml:"store"`

	// Scenario tunes the activation step.
	Scenario ScenarioConfig `json:"scenario" yaml:"scenario"`

	// Metrics configures the optional Prometheus textfile export.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// LoggingConfig configures cruisecheck's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" shows every signal read, write and pause.
	Level string `json:"level" yaml:"level"`

	// EventDir, when set and Level is debug or trace, receives an
	// events.jsonl trace of the run. Supports ${VAR} expansion.
	EventDir string `json:"event_dir,omitempty" yaml:"event_dir,omitempty"`
}

// StoreConfig selects where signal values live.
type StoreConfig struct {
	// Backend is "memory" (default) or "sqlite".
	Backend string `json:"backend" yaml:"backend"`

	// Path is the SQLite database file. Empty means an in-process
	// database. Ignored for the memory backend. Supports ${VAR} expansion.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ScenarioConfig tunes the two-step scenario.
type ScenarioConfig struct {
	// Seed makes the target speed draw reproducible. 0 seeds from the clock.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// AccPedalPercent is the accelerator position held during step 2.
	// 0 falls back to the default of 40.
	AccPedalPercent int `json:"acc_pedal_percent" yaml:"acc_pedal_percent"`

	// TargetSpeedMax bounds the stored set speed in the activation check.
	// 0 falls back to the default of 35.
	TargetSpeedMax int `json:"target_speed_max" yaml:"target_speed_max"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// File, when set, receives the run's metrics in text exposition format
	// after the scenario finishes. Supports ${VAR} expansion.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		Scenario: ScenarioConfig{
			AccPedalPercent: constants.DefaultAccPedalPercent,
			TargetSpeedMax:  constants.DefaultTargetSpeedMax,
		},
	}
}

// DefaultPath returns ~/.cruisecheck/config.yaml, or "" if the home
// directory cannot be determined.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cruisecheck", "config.yaml")
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.cruisecheck/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	if configPath := DefaultPath(); configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Logging.EventDir = expandEnvVars(config.Logging.EventDir)
	config.Store.Path = expandEnvVars(config.Store.Path)
	config.Metrics.File = expandEnvVars(config.Metrics.File)

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	validBackends := map[string]bool{"": true, BackendMemory: true, BackendSQLite: true}
	if !validBackends[c.Store.Backend] {
		return fmt.Errorf("invalid store backend: %s (valid: memory, sqlite)", c.Store.Backend)
	}

	if c.Scenario.AccPedalPercent < 0 {
		return fmt.Errorf("acc_pedal_percent must be non-negative, got %d", c.Scenario.AccPedalPercent)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("CRUISECHECK_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("CRUISECHECK_EVENT_DIR"); v != "" {
		config.Logging.EventDir = v
	}

	if v := os.Getenv("CRUISECHECK_STORE_BACKEND"); v != "" {
		config.Store.Backend = v
	}

	if v := os.Getenv("CRUISECHECK_STORE_PATH"); v != "" {
		config.Store.Path = v
	}

	if v := os.Getenv("CRUISECHECK_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Scenario.Seed = n
		}
	}

	if v := os.Getenv("CRUISECHECK_METRICS_FILE"); v != "" {
		config.Metrics.File = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
