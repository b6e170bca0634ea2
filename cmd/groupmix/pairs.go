package main

import (
	"context"
	"fmt"

	"github.com/groupmix/groupmix/app"
	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/service"
	"github.com/spf13/cobra"
)

// PairsCommand represents the pair co-occurrence report command
type PairsCommand struct {
	minCount int
	sortBy   string
	roster   string
	history  string

	json       bool
	yaml       bool
	csv        bool
	outputPath string
	configFile string
}

func NewPairsCommand() *PairsCommand { return &PairsCommand{} }

func NewPairsCmd() *cobra.Command {
	c := NewPairsCommand()

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Report how often each pair of people has shared a group",
		Long: `Scan the history directory and report, for every pair of current
roster members, how many past groups they shared. Pairs of people who
never met are omitted.

Examples:
  groupmix pairs
  groupmix pairs --min-count 2
  groupmix pairs --sort name --csv`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cmd.Flags().IntVar(&c.minCount, "min-count", 1, "Only show pairs that met at least this many times")
	cmd.Flags().StringVar(&c.sortBy, "sort", "", "Sort order: count, name")
	cmd.Flags().StringVarP(&c.roster, "roster", "r", "", "Roster file of email,name pairs")
	cmd.Flags().StringVar(&c.history, "history", "", "Directory of past groupings")
	cmd.Flags().BoolVar(&c.json, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output YAML")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output CSV")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path (.groupmix.toml or YAML)")

	return cmd
}

func (c *PairsCommand) run(cmd *cobra.Command, args []string) error {
	format, err := resolveFormatFlags(c.json, c.yaml, c.csv)
	if err != nil {
		return err
	}

	loader := service.NewConfigurationLoader()
	req, err := loader.PairsConfig(c.configFile)
	if err != nil {
		return err
	}

	if c.roster != "" {
		req.RosterPath = c.roster
	}
	if c.history != "" {
		req.HistoryDir = c.history
	}
	if format != "" {
		req.OutputFormat = format
	}
	if c.sortBy != "" {
		switch domain.SortCriteria(c.sortBy) {
		case domain.SortByCount, domain.SortByName:
			req.SortBy = domain.SortCriteria(c.sortBy)
		default:
			return fmt.Errorf("invalid sort order: %s (valid: count, name)", c.sortBy)
		}
	}
	req.MinCount = c.minCount
	req.OutputWriter = cmd.OutOrStdout()
	req.OutputPath = c.outputPath
	req.ConfigPath = c.configFile

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	useCase, err := app.NewPairsUseCaseBuilder().
		WithService(service.NewPairsService()).
		WithRosterLoader(service.NewRosterLoader()).
		WithHistoryReader(service.NewHistoryService()).
		WithFormatter(service.NewPairsFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
	if err != nil {
		return err
	}
	return useCase.Execute(ctx, *req)
}
