package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter outputs human-readable text summaries. Plain ASCII
// formatting works in every terminal and pipes cleanly to files.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the summary as plain text.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Site Catalog Report\n")
	fmt.Fprintf(&b, "===================\n\n")
	fmt.Fprintf(&b, "Source:          %s\n", summary.Source)
	fmt.Fprintf(&b, "Generated:       %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Sites:           %d\n", summary.SiteCount)
	fmt.Fprintf(&b, "Skipped entries: %d\n\n", summary.SkippedEntries)

	w.writeFindings(&b, summary)
	w.writeClusters(&b, summary)

	return w.output.Write([]byte(b.String()))
}

// writeFindings renders the anomaly section.
func (w *SimpleWriter) writeFindings(b *strings.Builder, summary *Summary) {
	fmt.Fprintf(b, "Anomalies (%d)\n", len(summary.Findings))
	fmt.Fprintf(b, "-------------\n")
	if len(summary.Findings) == 0 {
		fmt.Fprintf(b, "No anomalies detected.\n\n")
		return
	}
	for _, f := range summary.Findings {
		fmt.Fprintf(b, "  %s: invalid %q (%s)\n", f.Site, f.Field, f.Value)
	}
	fmt.Fprintf(b, "\n")
}

// writeClusters renders the description cluster section.
func (w *SimpleWriter) writeClusters(b *strings.Builder, summary *Summary) {
	fmt.Fprintf(b, "Description clusters\n")
	fmt.Fprintf(b, "--------------------\n")
	if summary.ClusterError != "" {
		fmt.Fprintf(b, "Clustering failed: %s\n", summary.ClusterError)
		return
	}
	if len(summary.Clusters) == 0 {
		fmt.Fprintf(b, "Clustering was not run.\n")
		return
	}
	for label, names := range summary.Clusters {
		fmt.Fprintf(b, "  cluster %d: %d sites\n", label, len(names))
	}
}
