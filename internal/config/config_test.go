package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[matching]
strict = true
concurrency = 4
accept_threshold = 0.85
locale = "de"
sort_order = "dvd"

[database]
path = "/var/lib/mediamatch/selections.db"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Matching.Strict)
	assert.Equal(t, 4, cfg.Matching.Concurrency)
	assert.Equal(t, 0.85, cfg.Matching.AcceptThreshold)
	assert.Equal(t, "de", cfg.Matching.Locale)
	assert.Equal(t, "dvd", cfg.Matching.SortOrder)
	assert.Equal(t, "/var/lib/mediamatch/selections.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[matching]
strict = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Matching.AcceptThreshold)
	assert.Equal(t, "en", cfg.Matching.Locale)
	assert.Equal(t, "airdate", cfg.Matching.SortOrder)
	assert.Equal(t, "./data/mediamatch.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	require.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[matching\nstrict = yes")
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("MEDIAMATCH_DB", "/data/test.db")

	path := writeConfig(t, `
[database]
path = "${MEDIAMATCH_DB}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/test.db", cfg.Database.Path)
}

func TestEnvVarSubstitutionMissingVarKept(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "${MEDIAMATCH_UNSET_DB}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${MEDIAMATCH_UNSET_DB}", cfg.Database.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   int
	}{
		{"defaults valid", func(c *Config) {}, 0},
		{"negative concurrency", func(c *Config) { c.Matching.Concurrency = -1 }, 1},
		{"threshold above one", func(c *Config) { c.Matching.AcceptThreshold = 1.5 }, 1},
		{"bad sort order", func(c *Config) { c.Matching.SortOrder = "alphabetical" }, 1},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, 1},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Len(t, cfg.Validate(), tt.want)
		})
	}
}
