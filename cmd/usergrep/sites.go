package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSitesCmd creates the sites command.
func NewSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List the names of all sites in the catalog",
		Long: `Sites loads the site-definition dataset and prints every site name in
case-insensitive alphabetical order.

Examples:
  # List sites from the canonical remote dataset
  usergrep sites

  # List sites from a local dataset, excluding NSFW sites
  usergrep sites --data ./data.json --safe

  # Keep selected NSFW sites while filtering
  usergrep sites --safe --keep OnlyFans`,
		Args: cobra.NoArgs,
		RunE: runSitesCmd,
	}

	addCatalogFlags(cmd)
	return cmd
}

// runSitesCmd executes the sites command.
func runSitesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger, _ := setupLogger(cfg.Verbose)

	c, source, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		if hint := describeLoadError(err); hint != "" {
			return fmt.Errorf("%w (%s)", err, hint)
		}
		return err
	}

	for _, name := range c.SiteNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	logger.Debug("listed sites", "source", source, "count", c.Len())
	return nil
}
