package config

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDataSourceURL is the canonical remote site-definition dataset.
	// It is used when no data source is configured. Kept as an explicit
	// default here, not buried at the point of use, so tests can inject a
	// local fixture instead.
	DefaultDataSourceURL = "https://raw.githubusercontent.com/sherlock-project/sherlock/master/sherlock_project/resources/data.json"

	// DefaultTimeout applies to the remote dataset fetch. The dataset is a
	// single file of a few hundred kilobytes; 30 seconds is generous even on
	// slow links.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies usergrep when fetching the remote dataset.
	DefaultUserAgent = "usergrep/1.0 (+https://github.com/usergrep/usergrep)"

	// DefaultMaxBodySize caps how much of a dataset response is read.
	// 20MB is an order of magnitude above the current dataset size and
	// guards against a misconfigured source streaming forever.
	DefaultMaxBodySize = 20 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "usergrep"
)

// Config holds all options for a usergrep run. It is populated from CLI
// flags and the optional configuration file, then passed down by value
// rather than read from global state.
type Config struct {
	// DataSource is the site-definition dataset: a local path or an
	// http(s) URL, always ending in ".json". Empty means
	// DefaultDataSourceURL.
	DataSource string

	// Timeout is the timeout for the remote dataset fetch.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent when fetching the dataset.
	UserAgent string

	// MaxBodySize is the maximum dataset response size in bytes to read.
	// Zero means no cap; negative is invalid.
	MaxBodySize int64

	// SafeOnly removes NSFW sites from the catalog after loading.
	SafeOnly bool

	// KeepSites are NSFW sites exempt from removal, matched
	// case-insensitively. Only consulted when SafeOnly is set.
	KeepSites []string

	// Verbose enables debug-level log output. When false, only warnings and
	// errors are logged.
	Verbose bool

	// JSONReport switches report output to JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport switches report output to Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to this path instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values. Several defaults are
// non-zero, so relying on zero values would silently misbehave; the
// constructor also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// Validate checks the configuration and returns the first problem found as
// a sentinel error. Called once after flag and file parsing, before any
// loading begins.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// HTTPClient returns an HTTP client configured with the fetch timeout.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.Timeout}
}

// XDGConfigDir returns the XDG config directory for usergrep.
// On Linux: ~/.config/usergrep.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
