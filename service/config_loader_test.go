package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/groupmix/groupmix/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	loader := NewConfigurationLoader()
	req := loader.LoadDefaultConfig()

	assert.Equal(t, 4, req.GroupSize)
	assert.Equal(t, 100, req.Attempts)
	assert.Equal(t, 2, req.MaxRepeat)
	assert.Equal(t, "names.txt", req.RosterPath)
	assert.Equal(t, "past-groups", req.HistoryDir)
	assert.Equal(t, domain.OutputFormatText, req.OutputFormat)
	assert.True(t, req.ShowGreeting)
}

func TestLoadConfigFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	content := "[grouping]\ngroup_size = 3\n\n[output]\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := NewConfigurationLoader()
	req, err := loader.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, req.GroupSize)
	assert.Equal(t, domain.OutputFormatJSON, req.OutputFormat)
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".groupmix.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grouping]\ngroup_size = \"nope\"\n"), 0o644))

	loader := NewConfigurationLoader()
	_, err := loader.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCodeConfigError)
}

func TestMergeConfigRespectsExplicitFlags(t *testing.T) {
	loader := NewConfigurationLoader()
	base := loader.LoadDefaultConfig()

	override := &domain.MixRequest{
		GroupSize: 6,
		Seed:      9,
		ExplicitFlags: map[string]bool{
			"group-size": true,
		},
	}

	merged := loader.MergeConfig(base, override)

	assert.Equal(t, 6, merged.GroupSize, "explicitly set flag wins")
	assert.Zero(t, merged.Seed, "unset flag keeps the config value")
	assert.Equal(t, base.Attempts, merged.Attempts)
}

func TestMergeConfigAlwaysTakesOutputWiring(t *testing.T) {
	loader := NewConfigurationLoader()
	base := loader.LoadDefaultConfig()

	override := &domain.MixRequest{
		OutputFormat: domain.OutputFormatCSV,
		OutputName:   "offsite.txt",
		DryRun:       true,
	}

	merged := loader.MergeConfig(base, override)
	assert.Equal(t, domain.OutputFormatCSV, merged.OutputFormat)
	assert.Equal(t, "offsite.txt", merged.OutputName)
	assert.True(t, merged.DryRun)
}

func TestPairsConfig(t *testing.T) {
	loader := NewConfigurationLoader()
	req, err := loader.PairsConfig("")
	require.NoError(t, err)

	assert.Equal(t, "names.txt", req.RosterPath)
	assert.Equal(t, "past-groups", req.HistoryDir)
	assert.Equal(t, domain.SortByCount, req.SortBy)
	assert.Equal(t, 1, req.MinCount)
}
