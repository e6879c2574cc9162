// Package log provides logger construction on top of the standard slog
// package, plus a handler wrapper that counts emitted diagnostics so the
// CLI can summarize how many entries were skipped or flagged during a run.
package log
