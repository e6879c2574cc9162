// Package report renders catalog summaries in multiple output formats:
// human-readable text, JSON, and Markdown.
package report
