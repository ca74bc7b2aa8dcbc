// Package config loads kagari's optional defaults file. All values have
// working zero-config defaults; a missing file is not an error.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/kagari-dev/kagari/internal/errors"
)

// Default path constants
const (
	DefaultConfigDir = "~/.config/kagari"
	DefaultStateDir  = "~/.local/state/kagari"
	ConfigFileName   = "config.yaml"
)

// Config represents kagari configuration.
type Config struct {
	// Interval is the frame interval as a duration string, e.g. "100ms".
	Interval string `yaml:"interval"`

	// NoColor disables colored output.
	NoColor bool `yaml:"noColor"`

	Spinner SpinnerDefaults `yaml:"spinner"`
	Glow    GlowDefaults    `yaml:"glow"`
	Matrix  MatrixDefaults  `yaml:"matrix"`
	Update  UpdateDefaults  `yaml:"update"`
}

// SpinnerDefaults holds defaults for the spin command.
type SpinnerDefaults struct {
	Preset  string `yaml:"preset"`
	Message string `yaml:"message"`
}

// GlowDefaults holds defaults for the glow command.
type GlowDefaults struct {
	Color     string `yaml:"color"`
	Intensity int    `yaml:"intensity"`
}

// MatrixDefaults holds defaults for the matrix command.
type MatrixDefaults struct {
	Charset string  `yaml:"charset"`
	Density float64 `yaml:"density"`
}

// UpdateDefaults holds defaults for the update command.
type UpdateDefaults struct {
	Steps        []string `yaml:"steps"`
	StepDuration string   `yaml:"stepDuration"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Interval: "100ms",
		Spinner: SpinnerDefaults{
			Preset:  "braille",
			Message: "Loading",
		},
		Glow: GlowDefaults{
			Color:     "cyan",
			Intensity: 3,
		},
		Matrix: MatrixDefaults{
			Charset: "ascii",
			Density: 0.15,
		},
		Update: UpdateDefaults{
			Steps:        []string{"linux-headers", "gcc", "python3", "nodejs", "git"},
			StepDuration: "1s",
		},
	}
}

// LoadConfig loads configuration from the config directory, overlaying the
// file's values on the defaults. Returns defaults when config.yaml does not
// exist.
func LoadConfig(configDir string) (*Config, error) {
	cfg := DefaultConfig()

	dir, err := ExpandHome(configDir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.CategoryConfig, "failed to read config file", err).
			WithDetail("path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("config.yaml", "failed to parse config file").
			WithHint("check the YAML syntax in " + path)
	}
	slog.Debug("loaded config file", "path", path)
	return cfg, nil
}

// TickInterval parses the configured frame interval.
func (c *Config) TickInterval() (time.Duration, error) {
	return parseDuration("interval", c.Interval)
}

// StepDuration parses the configured per-step display duration.
func (c *Config) StepDuration() (time.Duration, error) {
	return parseDuration("update.stepDuration", c.Update.StepDuration)
}

func parseDuration(option, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.NewConfigError(option, "invalid duration").
			WithValue(value).
			WithHint(`use a Go duration string like "100ms" or "2s"`)
	}
	if d <= 0 {
		return 0, errors.NewOutOfRangeError(option, value, "positive duration")
	}
	return d, nil
}

// ExpandHome expands a leading ~ in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.CategoryConfig, "failed to resolve home directory", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
