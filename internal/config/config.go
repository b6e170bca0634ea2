package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for group generation. GroupSize and MaxRepeat carry over from
// the original lunch-grouping workflow; Attempts bounds the randomized
// restart search.
const (
	// DefaultGroupSize is the target number of people per group.
	DefaultGroupSize = 4

	// DefaultAttempts is how many randomized greedy passes to run before
	// settling for the best grouping found.
	DefaultAttempts = 100

	// DefaultMaxRepeat is the largest member overlap a new group may have
	// with any single past group before the result carries a warning.
	DefaultMaxRepeat = 2

	// DefaultRosterPath is the participant roster file.
	DefaultRosterPath = "names.txt"

	// DefaultHistoryDir is the directory of past (and newly written)
	// groupings.
	DefaultHistoryDir = "past-groups"
)

// Config represents the main configuration structure
type Config struct {
	// Grouping holds group generation configuration
	Grouping GroupingConfig `mapstructure:"grouping" yaml:"grouping"`

	// Roster holds participant roster configuration
	Roster RosterConfig `mapstructure:"roster" yaml:"roster"`

	// History holds past-groups storage configuration
	History HistoryConfig `mapstructure:"history" yaml:"history"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// GroupingConfig holds configuration for group generation
type GroupingConfig struct {
	// GroupSize is the target number of people per group (minimum 2)
	GroupSize int `mapstructure:"group_size" yaml:"group_size"`

	// Attempts is the number of randomized restarts of the greedy pass
	Attempts int `mapstructure:"attempts" yaml:"attempts"`

	// MaxRepeat is the member-overlap threshold against any past group
	// above which the result is flagged with a warning
	MaxRepeat int `mapstructure:"max_repeat" yaml:"max_repeat"`

	// Seed fixes the random source for reproducible runs; 0 derives a
	// seed from the current time
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// RosterConfig holds configuration for the participant roster
type RosterConfig struct {
	// Path is the roster file listing "email,name" pairs
	Path string `mapstructure:"path" yaml:"path"`
}

// HistoryConfig holds configuration for past-groups storage
type HistoryConfig struct {
	// Directory holds past grouping files; new groupings are written here
	Directory string `mapstructure:"directory" yaml:"directory"`

	// IncludePatterns selects which files in the directory count as
	// history (doublestar globs against the file name)
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns removes files from the history even when included
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `mapstructure:"format" yaml:"format"`

	// Greeting controls whether text output includes the email greeting
	// line per group
	Greeting bool `mapstructure:"greeting" yaml:"greeting"`

	// SortBy specifies how to sort pair reports: count, name
	SortBy string `mapstructure:"sort_by" yaml:"sort_by"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Grouping: GroupingConfig{
			GroupSize: DefaultGroupSize,
			Attempts:  DefaultAttempts,
			MaxRepeat: DefaultMaxRepeat,
			Seed:      0,
		},
		Roster: RosterConfig{
			Path: DefaultRosterPath,
		},
		History: HistoryConfig{
			Directory:       DefaultHistoryDir,
			IncludePatterns: []string{"*"},
			ExcludePatterns: []string{"*.md"},
		},
		Output: OutputConfig{
			Format:   "text",
			Greeting: true,
			SortBy:   "count",
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Grouping.GroupSize < 2 {
		return fmt.Errorf("grouping.group_size must be at least 2, got %d", c.Grouping.GroupSize)
	}
	if c.Grouping.Attempts < 1 {
		return fmt.Errorf("grouping.attempts must be at least 1, got %d", c.Grouping.Attempts)
	}
	if c.Grouping.MaxRepeat < 0 {
		return fmt.Errorf("grouping.max_repeat must not be negative, got %d", c.Grouping.MaxRepeat)
	}
	switch c.Output.Format {
	case "text", "json", "yaml", "csv":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, csv; got %q", c.Output.Format)
	}
	switch c.Output.SortBy {
	case "count", "name":
	default:
		return fmt.Errorf("output.sort_by must be count or name, got %q", c.Output.SortBy)
	}
	return nil
}

// LoadConfig loads configuration from file or returns the default config.
// TOML files go through the strict go-toml loader; everything else is
// handled by viper.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try to find default config files
	if configPath == "" {
		configPath = findDefaultConfig()
	}

	// If still no config found, return default
	if configPath == "" {
		return config, nil
	}

	if strings.HasSuffix(configPath, ".toml") {
		if err := loadTOML(configPath, config); err != nil {
			return nil, err
		}
	} else {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := v.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findDefaultConfig looks for default configuration files in the current
// directory.
func findDefaultConfig() string {
	candidates := []string{
		".groupmix.toml",
		"groupmix.toml",
		".groupmix.yaml",
		"groupmix.yaml",
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, candidate := range candidates {
		path := filepath.Join(cwd, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
