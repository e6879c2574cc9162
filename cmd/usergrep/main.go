// Package main provides the entry point for the usergrep CLI.
//
// usergrep maintains a catalog of websites and the metadata needed to probe
// whether a username exists on each of them.
//
// Usage:
//
//	usergrep sites
//	usergrep report --markdown
//
// See --help for all available options.
package main

// main is the entry point for usergrep.
func main() {
	Execute()
}
