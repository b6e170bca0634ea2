package main

import (
	"fmt"

	"github.com/groupmix/groupmix/internal/version"
	"github.com/spf13/cobra"
)

// VersionCommand represents the version command
type VersionCommand struct {
	short bool
}

func NewVersionCommand() *VersionCommand { return &VersionCommand{} }

func NewVersionCmd() *cobra.Command {
	c := NewVersionCommand()

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	cmd.Flags().BoolVar(&c.short, "short", false, "Print just the version number")

	return cmd
}

func (c *VersionCommand) run(cmd *cobra.Command, args []string) error {
	if c.short {
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	return nil
}
