// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Matching MatchingConfig `toml:"matching"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// MatchingConfig tunes the matching pipeline.
type MatchingConfig struct {
	Strict          bool    `toml:"strict"`
	Autodetect      bool    `toml:"autodetect"`
	Concurrency     int     `toml:"concurrency"`
	AcceptThreshold float64 `toml:"accept_threshold"`
	Locale          string  `toml:"locale"`
	SortOrder       string  `toml:"sort_order"`
}

// DatabaseConfig locates the persistent selection memory.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Matching.AcceptThreshold == 0 {
		c.Matching.AcceptThreshold = 0.9
	}
	if c.Matching.Locale == "" {
		c.Matching.Locale = "en"
	}
	if c.Matching.SortOrder == "" {
		c.Matching.SortOrder = "airdate"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/mediamatch.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
