package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs summaries as GitHub-flavored Markdown, suitable
// for documentation and sharing. Generation goes through the
// nao1215/markdown builder rather than string concatenation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the summary as Markdown.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Site Catalog Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + summary.Source + "`"},
			{"Generated", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Sites", strconv.Itoa(summary.SiteCount)},
			{"Skipped entries", strconv.Itoa(summary.SkippedEntries)},
		},
	})
	md.PlainText("")

	w.writeFindings(md, summary)
	w.writeClusters(md, summary)

	return len(md.String()), md.Build()
}

// writeFindings renders the anomaly section.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, summary *Summary) {
	md.H2("Anomalies")
	md.PlainText("")
	if len(summary.Findings) == 0 {
		md.PlainText("No anomalies detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.Findings))
	for _, f := range summary.Findings {
		rows = append(rows, []string{f.Site, f.Field, "`" + f.Value + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Site", "Field", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeClusters renders the description cluster section.
func (w *MarkdownWriter) writeClusters(md *markdown.Markdown, summary *Summary) {
	md.H2("Description Clusters")
	md.PlainText("")
	if summary.ClusterError != "" {
		md.PlainText("Clustering failed: " + summary.ClusterError)
		md.PlainText("")
		return
	}
	if len(summary.Clusters) == 0 {
		md.PlainText("Clustering was not run.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.Clusters))
	for label, names := range summary.Clusters {
		rows = append(rows, []string{strconv.Itoa(label), strconv.Itoa(len(names))})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Cluster", "Sites"},
		Rows:   rows,
	})
	md.PlainText("")
}
