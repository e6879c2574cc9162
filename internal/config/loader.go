package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".usergrep"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .usergrep configuration file.
// Every field is optional; flags take precedence over file values.
type File struct {
	// DataSource overrides the dataset location (path or URL).
	DataSource string `yaml:"dataSource,omitempty"`

	// KeepSites are NSFW sites exempt from removal in safe mode.
	KeepSites []string `yaml:"keepSites,omitempty"`

	// UserAgent overrides the User-Agent for remote fetches.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Timeout overrides the fetch timeout, in Go duration syntax
	// (e.g. "45s").
	Timeout string `yaml:"timeout,omitempty"`
}

// LoadConfigFile loads usergrep settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that matters based on whether the path was explicitly requested.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .usergrep in the current directory
// 3. Look for .usergrep in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Apply merges file values into cfg. Only fields the file actually sets are
// applied, and only where the config still carries its default, so CLI flags
// win over the file.
func (f *File) Apply(cfg *Config) error {
	if f.DataSource != "" && cfg.DataSource == "" {
		cfg.DataSource = f.DataSource
	}
	if len(f.KeepSites) > 0 && len(cfg.KeepSites) == 0 {
		cfg.KeepSites = f.KeepSites
	}
	if f.UserAgent != "" && cfg.UserAgent == DefaultUserAgent {
		cfg.UserAgent = f.UserAgent
	}
	if f.Timeout != "" && cfg.Timeout == DefaultTimeout {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}
