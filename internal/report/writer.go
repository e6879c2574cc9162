package report

import "io"

// Writer defines the interface for summary output. Implementations render a
// catalog summary in one format: plain text, JSON, or Markdown. Keeping the
// interface format-agnostic lets the CLI write to stdout, a file, or both
// with the same code path.
type Writer interface {
	// Write renders the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
