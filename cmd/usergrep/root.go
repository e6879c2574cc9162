// Package main provides the entry point for the usergrep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for usergrep.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usergrep",
		Short: "Manage the catalog of sites used for username searches",
		Long: `usergrep maintains a catalog of websites and the URL/format metadata
needed to probe whether a username exists on each of them.

The catalog is loaded from a local JSON file or a remote URL, validated,
optionally filtered for NSFW sites, linted for malformed entries, and
grouped by description similarity.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSitesCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
