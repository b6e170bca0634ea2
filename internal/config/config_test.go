package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultGroupSize, cfg.Grouping.GroupSize)
	assert.Equal(t, DefaultAttempts, cfg.Grouping.Attempts)
	assert.Equal(t, DefaultMaxRepeat, cfg.Grouping.MaxRepeat)
	assert.Zero(t, cfg.Grouping.Seed)
	assert.Equal(t, DefaultRosterPath, cfg.Roster.Path)
	assert.Equal(t, DefaultHistoryDir, cfg.History.Directory)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Greeting)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{
			name:   "group size too small",
			modify: func(c *Config) { c.Grouping.GroupSize = 1 },
			errMsg: "group_size",
		},
		{
			name:   "zero attempts",
			modify: func(c *Config) { c.Grouping.Attempts = 0 },
			errMsg: "attempts",
		},
		{
			name:   "negative max repeat",
			modify: func(c *Config) { c.Grouping.MaxRepeat = -1 },
			errMsg: "max_repeat",
		},
		{
			name:   "unknown format",
			modify: func(c *Config) { c.Output.Format = "html" },
			errMsg: "output.format",
		},
		{
			name:   "unknown sort",
			modify: func(c *Config) { c.Output.SortBy = "age" },
			errMsg: "sort_by",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	content := `
[grouping]
group_size = 3
seed = 99

[history]
directory = "archive"
include_patterns = ["*.txt"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Grouping.GroupSize)
	assert.Equal(t, int64(99), cfg.Grouping.Seed)
	assert.Equal(t, "archive", cfg.History.Directory)
	assert.Equal(t, []string{"*.txt"}, cfg.History.IncludePatterns)

	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultAttempts, cfg.Grouping.Attempts)
	assert.Equal(t, DefaultRosterPath, cfg.Roster.Path)
	assert.Equal(t, []string{"*.md"}, cfg.History.ExcludePatterns)
}

func TestLoadConfigTOMLUnknownKeyFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grouping]\ngroup_sise = 3\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groupmix.yaml")
	content := `
grouping:
  group_size: 5
output:
  format: json
  sort_by: name
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Grouping.GroupSize)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "name", cfg.Output.SortBy)
}

func TestLoadConfigInvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grouping]\ngroup_size = 1\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfigMissingPathReturnsDefaults(t *testing.T) {
	// Run from an empty directory so no default config file is found.
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGroupSize, cfg.Grouping.GroupSize)
}

func TestDefaultConfigTOMLTemplateParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultConfigTOML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
