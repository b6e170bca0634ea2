package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors Config with toml tags. Pointer fields distinguish
// "unset" from zero values so a partial config file only overrides what
// it mentions.
type tomlConfig struct {
	Grouping tomlGroupingConfig `toml:"grouping"`
	Roster   tomlRosterConfig   `toml:"roster"`
	History  tomlHistoryConfig  `toml:"history"`
	Output   tomlOutputConfig   `toml:"output"`
}

type tomlGroupingConfig struct {
	GroupSize *int   `toml:"group_size"`
	Attempts  *int   `toml:"attempts"`
	MaxRepeat *int   `toml:"max_repeat"`
	Seed      *int64 `toml:"seed"`
}

type tomlRosterConfig struct {
	Path *string `toml:"path"`
}

type tomlHistoryConfig struct {
	Directory       *string  `toml:"directory"`
	IncludePatterns []string `toml:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns"`
}

type tomlOutputConfig struct {
	Format   *string `toml:"format"`
	Greeting *bool   `toml:"greeting"`
	SortBy   *string `toml:"sort_by"`
}

// loadTOML strictly parses a TOML config file on top of cfg. Unknown keys
// are an error so typos don't silently fall back to defaults.
func loadTOML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed tomlConfig
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	parsed.apply(cfg)
	return nil
}

func (t *tomlConfig) apply(cfg *Config) {
	if t.Grouping.GroupSize != nil {
		cfg.Grouping.GroupSize = *t.Grouping.GroupSize
	}
	if t.Grouping.Attempts != nil {
		cfg.Grouping.Attempts = *t.Grouping.Attempts
	}
	if t.Grouping.MaxRepeat != nil {
		cfg.Grouping.MaxRepeat = *t.Grouping.MaxRepeat
	}
	if t.Grouping.Seed != nil {
		cfg.Grouping.Seed = *t.Grouping.Seed
	}
	if t.Roster.Path != nil {
		cfg.Roster.Path = *t.Roster.Path
	}
	if t.History.Directory != nil {
		cfg.History.Directory = *t.History.Directory
	}
	if t.History.IncludePatterns != nil {
		cfg.History.IncludePatterns = t.History.IncludePatterns
	}
	if t.History.ExcludePatterns != nil {
		cfg.History.ExcludePatterns = t.History.ExcludePatterns
	}
	if t.Output.Format != nil {
		cfg.Output.Format = *t.Output.Format
	}
	if t.Output.Greeting != nil {
		cfg.Output.Greeting = *t.Output.Greeting
	}
	if t.Output.SortBy != nil {
		cfg.Output.SortBy = *t.Output.SortBy
	}
}
