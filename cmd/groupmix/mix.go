package main

import (
	"context"
	"fmt"

	"github.com/groupmix/groupmix/app"
	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MixCommand represents the group generation command
type MixCommand struct {
	groupSize  int
	attempts   int
	maxRepeat  int
	seed       int64
	roster     string
	history    string
	dryRun     bool
	noGreeting bool

	// Output format flags (only one should be true)
	json       bool
	yaml       bool
	csv        bool
	outputPath string
	configFile string
}

func NewMixCommand() *MixCommand { return &MixCommand{} }

func NewMixCmd() *cobra.Command {
	c := NewMixCommand()

	cmd := &cobra.Command{
		Use:   "mix [output-name]",
		Short: "Generate a new grouping and append it to the history",
		Long: `Partition the roster into groups that overlap as little as possible
with the recorded past groups, print the result, and save it to the
history directory.

The optional output-name argument names the history file the grouping is
written to; the default is a timestamped file name.

Examples:
  groupmix mix
  groupmix mix offsite-2026.txt
  groupmix mix --group-size 3 --seed 7
  groupmix mix --json --dry-run
  groupmix mix --output grouping.csv --csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}

	cmd.Flags().IntVarP(&c.groupSize, "group-size", "g", 0, "Target number of people per group")
	cmd.Flags().IntVar(&c.attempts, "attempts", 0, "Randomized restarts of the grouping search")
	cmd.Flags().IntVar(&c.maxRepeat, "max-repeat", 0, "Warn when a group shares more than this many members with a past group")
	cmd.Flags().Int64Var(&c.seed, "seed", 0, "Random seed (0 = derive from current time)")
	cmd.Flags().StringVarP(&c.roster, "roster", "r", "", "Roster file of email,name pairs")
	cmd.Flags().StringVar(&c.history, "history", "", "Directory of past groupings")
	cmd.Flags().BoolVar(&c.dryRun, "dry-run", false, "Print the grouping without saving it to the history")
	cmd.Flags().BoolVar(&c.noGreeting, "no-greeting", false, "Omit the greeting line per group in text output")
	cmd.Flags().BoolVar(&c.json, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output YAML")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output CSV")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path (.groupmix.toml or YAML)")

	return cmd
}

func (c *MixCommand) run(cmd *cobra.Command, args []string) error {
	format, err := resolveFormatFlags(c.json, c.yaml, c.csv)
	if err != nil {
		return err
	}

	loader := service.NewConfigurationLoader()
	base, err := loader.LoadConfig(c.configFile)
	if err != nil {
		return err
	}

	override := &domain.MixRequest{
		GroupSize:     c.groupSize,
		Attempts:      c.attempts,
		MaxRepeat:     c.maxRepeat,
		Seed:          c.seed,
		RosterPath:    c.roster,
		HistoryDir:    c.history,
		ShowGreeting:  !c.noGreeting,
		DryRun:        c.dryRun,
		OutputWriter:  cmd.OutOrStdout(),
		OutputPath:    c.outputPath,
		ConfigPath:    c.configFile,
		ExplicitFlags: trackExplicitFlags(cmd),
	}
	if format != "" {
		override.OutputFormat = format
	}
	if len(args) > 0 {
		override.OutputName = args[0]
	}

	req := loader.MergeConfig(base, override)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	useCase, err := c.createUseCase(cmd)
	if err != nil {
		return err
	}
	return useCase.Execute(ctx, *req)
}

func (c *MixCommand) createUseCase(cmd *cobra.Command) (*app.MixUseCase, error) {
	groupingService := service.NewGroupingService()
	if service.IsInteractiveEnvironment() {
		groupingService.SetProgressManager(service.NewProgressManager())
	}
	historyService := service.NewHistoryService()

	return app.NewMixUseCaseBuilder().
		WithService(groupingService).
		WithRosterLoader(service.NewRosterLoader()).
		WithHistoryReader(historyService).
		WithHistoryWriter(historyService).
		WithFormatter(service.NewGroupingFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
}

// resolveFormatFlags maps the mutually exclusive format flags onto an
// output format; empty means "use the configured default".
func resolveFormatFlags(json, yaml, csv bool) (domain.OutputFormat, error) {
	count := 0
	format := domain.OutputFormat("")
	if json {
		count++
		format = domain.OutputFormatJSON
	}
	if yaml {
		count++
		format = domain.OutputFormatYAML
	}
	if csv {
		count++
		format = domain.OutputFormatCSV
	}
	if count > 1 {
		return "", fmt.Errorf("only one of --json, --yaml, --csv can be specified")
	}
	return format, nil
}

// trackExplicitFlags records which flags the user actually set, so config
// merging can tell explicit zeros from unset flags.
func trackExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicit := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}
