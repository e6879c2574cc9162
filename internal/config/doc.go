// Package config provides configuration structures and utilities for
// usergrep: dataset source selection, fetch behavior, NSFW filtering, and
// report output preferences.
package config
