// Package config loads CLI configuration from defaults, a YAML file,
// CALIBRATE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
)

// Defaults.
const (
	DefaultInput   = "input.txt"
	DefaultWorkers = 1
	DefaultOutput  = OutputText
	EnvPrefix      = "CALIBRATE_"
)

// Output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// ConfigFileNames are searched in the working directory when no --config is given.
var ConfigFileNames = []string{"calibrate.yaml", "calibrate.yml"}

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all CLI configuration options.
type Config struct {
	Input   string `koanf:"input"`
	Workers int    `koanf:"workers"`
	Prune   bool   `koanf:"prune"`
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Output {
	case OutputText, OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q (text|table|json)", ErrInvalidConfig, c.Output)
	}
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}

	return nil
}
