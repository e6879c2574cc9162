package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/usergrep/usergrep/internal/analyze"
	"github.com/usergrep/usergrep/internal/config"
	"github.com/usergrep/usergrep/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze the catalog and render a report",
		Long: `Report loads the site-definition dataset, lints every entry for
malformed field values, clusters sites by the similarity of their
descriptions, and renders the results.

A degenerate description corpus (too few sites, or no usable words) fails
only the clustering step; the rest of the report is still produced.

Examples:
  # Human-readable report from the canonical remote dataset
  usergrep report

  # Markdown report from a local dataset, written to a file
  usergrep report --data ./data.json --markdown --output report.md

  # JSON report without NSFW sites
  usergrep report --safe --json`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	addCatalogFlags(cmd)
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, diagnostics := setupLogger(cfg.Verbose)

	c, source, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		if hint := describeLoadError(err); hint != "" {
			return fmt.Errorf("%w (%s)", err, hint)
		}
		return err
	}

	// Both passes run after construction and filtering: filtering changes
	// the description corpus, and clustering writes into the records the
	// findings reference.
	findings := analyze.DetectAnomalies(c, logger)
	clusterErr := analyze.ClusterDescriptions(c)
	if clusterErr != nil && !errors.Is(clusterErr, analyze.ErrClustering) {
		return clusterErr
	}

	summary := report.NewSummary(source, c, findings, clusterErr)

	output, closer, err := reportDestination(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closer()

	if _, err := newReportWriter(cfg, output).Write(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if n := diagnostics.Warnings(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d diagnostics emitted during this run\n", n)
	}
	return nil
}

// reportDestination returns the writer the report goes to and a close
// function. Stdout needs no closing; file destinations get their parent
// directories created.
func reportDestination(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter picks the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
