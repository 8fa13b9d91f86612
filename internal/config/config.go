// Package config loads the optional user configuration file and owns
// the process-wide logger setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/carbontrack/carbontrack/internal/emissions"
)

// LoggingConfig controls log level and optional file output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the user-level configuration.
type Config struct {
	// DefaultRegion is used when a command does not pass --region.
	DefaultRegion string `yaml:"default_region"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DefaultRegion: string(emissions.DefaultRegion),
		Logging:       LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns the default config file location
// (~/.carbontrack/config.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carbontrack", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultPath when
// path is empty. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = string(emissions.DefaultRegion)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if _, err := emissions.ParseRegion(cfg.DefaultRegion); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: default_region: %w", path, err)
	}

	return cfg, nil
}
