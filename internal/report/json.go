package report

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONWriter outputs summaries as indented JSON, for machine consumption
// and log aggregation.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the summary as JSON.
func (w *JSONWriter) Write(summary *Summary) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
