// Package config loads InterpreCAD settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the config file is looked for when no --config flag
// is given.
const DefaultPath = "interprecad.toml"

// Config holds the tool settings.
type Config struct {
	LogLevel string `toml:"log_level"`
	Output   Output `toml:"output"`
}

// Output controls the rendered text surrounding and formatting.
type Output struct {
	// Header and Footer wrap the emitted command blocks. The %s verb in
	// Header, when present, receives the session ID.
	Header string `toml:"header"`
	Footer string `toml:"footer"`
	// Precision is the decimal count for emitted numbers; -1 emits the
	// shortest exact representation.
	Precision int `toml:"precision"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Output: Output{
			Header:    "' Generated by InterpreCAD, session %s",
			Footer:    "' End of script",
			Precision: -1,
		},
	}
}

// Load reads the config file at path. A missing file at the default path is
// not an error and yields the defaults; any other read or parse failure is
// reported.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if path != DefaultPath {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Environment variable overrides the file, flags override both.
	if env := os.Getenv("INTERPRECAD_LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}

	return cfg, nil
}
