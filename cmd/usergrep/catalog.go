package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/usergrep/usergrep/internal/catalog"
	"github.com/usergrep/usergrep/internal/config"
	"github.com/usergrep/usergrep/internal/log"
)

// addCatalogFlags registers the flags shared by every command that loads
// the catalog.
func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "",
		"Site data source: local .json path or http(s) URL (default: the canonical remote dataset)")
	cmd.Flags().BoolP("safe", "s", false,
		"Remove NSFW sites from the catalog")
	cmd.Flags().StringSliceP("keep", "k", nil,
		"NSFW sites to keep in safe mode, matched case-insensitively")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for fetching a remote data source")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .usergrep in current or home directory)")
}

// buildConfig assembles a Config from flags and the optional config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	if cfg.DataSource, err = cmd.Flags().GetString("data"); err != nil {
		return nil, err
	}
	if cfg.SafeOnly, err = cmd.Flags().GetBool("safe"); err != nil {
		return nil, err
	}
	if cfg.KeepSites, err = cmd.Flags().GetStringSlice("keep"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if found := config.FindConfigFile(configPath); found != "" {
		cf, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", found, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// getVerboseFlag retrieves the persistent verbose flag.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}
	return verbose
}

// loadCatalog loads the data source and builds the catalog, applying the
// NSFW filter when configured. It returns the catalog together with the
// resolved source identifier for reporting.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, string, error) {
	source := cfg.DataSource
	if source == "" {
		source = config.DefaultDataSourceURL
	}

	loader := &catalog.Loader{
		Client:        cfg.HTTPClient(),
		DefaultSource: config.DefaultDataSourceURL,
		UserAgent:     cfg.UserAgent,
		MaxBodySize:   cfg.MaxBodySize,
	}

	entries, err := loader.Load(ctx, cfg.DataSource)
	if err != nil {
		return nil, source, err
	}

	c, err := catalog.Build(entries, logger)
	if err != nil {
		return nil, source, err
	}
	logger.Debug("catalog built", "source", source, "sites", c.Len(), "skipped", c.Skipped())

	if cfg.SafeOnly {
		before := c.Len()
		c.RemoveSensitive(cfg.KeepSites)
		logger.Debug("sensitive sites removed", "removed", before-c.Len())
	}
	return c, source, nil
}

// setupLogger builds the CLI logger writing to stderr.
func setupLogger(verbose bool) (*slog.Logger, *log.CountingHandler) {
	return log.NewLogger(os.Stderr, verbose)
}

// describeLoadError maps a load failure to a hint for the user. Retryable
// source failures are distinguished from configuration mistakes and corrupt
// datasets; all are fatal for the run.
func describeLoadError(err error) string {
	switch {
	case errors.Is(err, catalog.ErrInvalidSource):
		return "fix the data source path or URL"
	case errors.Is(err, catalog.ErrSourceUnavailable):
		return "the data source could not be reached; retry later"
	case errors.Is(err, catalog.ErrMalformedData), errors.Is(err, catalog.ErrCatalogBuild):
		return "the dataset is corrupt and must be repaired"
	default:
		return ""
	}
}
