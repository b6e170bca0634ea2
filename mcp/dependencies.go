package mcp

import (
	"github.com/groupmix/groupmix/app"
	"github.com/groupmix/groupmix/internal/config"
	"github.com/groupmix/groupmix/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// BuildMixUseCase assembles a fresh MixUseCase with injected dependencies.
// Progress output is suppressed because stdout carries JSON-RPC.
func (d *Dependencies) BuildMixUseCase() (*app.MixUseCase, error) {
	groupingService := service.NewGroupingService()
	groupingService.SetProgressManager(service.NewNoopProgressManager())
	historyService := service.NewHistoryService()

	return app.NewMixUseCaseBuilder().
		WithService(groupingService).
		WithRosterLoader(service.NewRosterLoader()).
		WithHistoryReader(historyService).
		WithHistoryWriter(historyService).
		WithFormatter(service.NewGroupingFormatter()).
		Build()
}

// BuildPairsUseCase assembles a fresh PairsUseCase with injected dependencies.
func (d *Dependencies) BuildPairsUseCase() (*app.PairsUseCase, error) {
	return app.NewPairsUseCaseBuilder().
		WithService(service.NewPairsService()).
		WithRosterLoader(service.NewRosterLoader()).
		WithHistoryReader(service.NewHistoryService()).
		WithFormatter(service.NewPairsFormatter()).
		Build()
}
