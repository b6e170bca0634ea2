package main

import (
	"fmt"
	"os"

	"github.com/groupmix/groupmix/internal/config"
	"github.com/spf13/cobra"
)

// InitCommand represents the configuration scaffolding command
type InitCommand struct {
	force  bool
	output string
}

func NewInitCommand() *InitCommand { return &InitCommand{} }

func NewInitCmd() *cobra.Command {
	c := NewInitCommand()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .groupmix.toml configuration file",
		Long: `Write a configuration template with all options set to their
defaults, commented so it can be edited in place.

Examples:
  groupmix init
  groupmix init --output groupmix.toml
  groupmix init --force`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cmd.Flags().BoolVarP(&c.force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().StringVarP(&c.output, "output", "o", ".groupmix.toml", "Path of the configuration file to write")

	return cmd
}

func (c *InitCommand) run(cmd *cobra.Command, args []string) error {
	if !c.force {
		if _, err := os.Stat(c.output); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", c.output)
		}
	}

	if err := os.WriteFile(c.output, []byte(config.DefaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", c.output)
	return nil
}
