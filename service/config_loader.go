package service

import (
	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/internal/config"
)

// ConfigurationLoaderImpl loads configuration files into mix requests
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path (or from the
// default config files when path is empty) as a baseline mix request.
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.MixRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.toMixRequest(cfg), nil
}

// LoadDefaultConfig returns the built-in defaults as a mix request.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.MixRequest {
	return c.toMixRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags onto a configuration baseline. Flag values
// only win when they were explicitly set on the command line.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.MixRequest, override *domain.MixRequest) *domain.MixRequest {
	merged := *base

	wasExplicitlySet := func(flagName string) bool {
		if override.ExplicitFlags == nil {
			return false
		}
		return override.ExplicitFlags[flagName]
	}

	if wasExplicitlySet("group-size") {
		merged.GroupSize = override.GroupSize
	}
	if wasExplicitlySet("attempts") {
		merged.Attempts = override.Attempts
	}
	if wasExplicitlySet("max-repeat") {
		merged.MaxRepeat = override.MaxRepeat
	}
	if wasExplicitlySet("seed") {
		merged.Seed = override.Seed
	}
	if wasExplicitlySet("roster") {
		merged.RosterPath = override.RosterPath
	}
	if wasExplicitlySet("history") {
		merged.HistoryDir = override.HistoryDir
	}
	if wasExplicitlySet("no-greeting") {
		merged.ShowGreeting = override.ShowGreeting
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.OutputName != "" {
		merged.OutputName = override.OutputName
	}
	merged.DryRun = override.DryRun
	merged.ConfigPath = override.ConfigPath
	merged.ExplicitFlags = override.ExplicitFlags

	return &merged
}

// PairsConfig resolves configuration into a pair-report request baseline.
func (c *ConfigurationLoaderImpl) PairsConfig(path string) (*domain.PairsRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	format, err := domain.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &domain.PairsRequest{
		RosterPath:      cfg.Roster.Path,
		HistoryDir:      cfg.History.Directory,
		IncludePatterns: cfg.History.IncludePatterns,
		ExcludePatterns: cfg.History.ExcludePatterns,
		MinCount:        1,
		SortBy:          domain.SortCriteria(cfg.Output.SortBy),
		OutputFormat:    format,
	}, nil
}

func (c *ConfigurationLoaderImpl) toMixRequest(cfg *config.Config) *domain.MixRequest {
	format, err := domain.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		// Config validation already rejects unknown formats.
		format = domain.OutputFormatText
	}

	return &domain.MixRequest{
		RosterPath:      cfg.Roster.Path,
		HistoryDir:      cfg.History.Directory,
		IncludePatterns: cfg.History.IncludePatterns,
		ExcludePatterns: cfg.History.ExcludePatterns,
		GroupSize:       cfg.Grouping.GroupSize,
		Attempts:        cfg.Grouping.Attempts,
		MaxRepeat:       cfg.Grouping.MaxRepeat,
		Seed:            cfg.Grouping.Seed,
		OutputFormat:    format,
		ShowGreeting:    cfg.Output.Greeting,
	}
}
