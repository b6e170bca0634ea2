package main

import (
	"os"

	"github.com/groupmix/groupmix/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "groupmix",
	Short: "Generate groups of people with minimal overlap with past groups",
	Long: `groupmix partitions a roster of people into small groups (lunch
groups, pairing rotations, study circles) so that the generated groups
resemble past groups as little as possible.

It reads a roster of "email,name" pairs, scores candidate groupings
against the recorded history of past groups, and appends the winning
grouping to the history for the next run.`,
	Version: version.Short(),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add main subcommands
	rootCmd.AddCommand(NewMixCmd())
	rootCmd.AddCommand(NewPairsCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
