package report

import (
	"time"

	"github.com/usergrep/usergrep/internal/analyze"
	"github.com/usergrep/usergrep/internal/catalog"
	"github.com/usergrep/usergrep/internal/model"
)

// Summary is the renderable result of a catalog run: what was loaded, what
// was dropped, what the lint pass flagged, and how the descriptions
// clustered.
type Summary struct {
	// Source identifies the dataset that was loaded (path or URL).
	Source string `json:"source"`

	// GeneratedAt is when the summary was assembled.
	GeneratedAt time.Time `json:"generatedAt"`

	// SiteCount is the number of sites in the catalog after filtering.
	SiteCount int `json:"siteCount"`

	// SkippedEntries is the number of structurally corrupt entries dropped
	// during the build.
	SkippedEntries int `json:"skippedEntries"`

	// Findings are the anomaly lint results, in catalog order.
	Findings []analyze.Finding `json:"findings,omitempty"`

	// Clusters groups site names by cluster label; index is the label.
	// Empty when clustering was not run or failed.
	Clusters [][]string `json:"clusters,omitempty"`

	// ClusterError carries the clustering failure, if any. Clustering
	// failing on a degenerate corpus does not invalidate the rest of the
	// summary.
	ClusterError string `json:"clusterError,omitempty"`
}

// NewSummary assembles a Summary from a catalog and its analysis results.
// clusterErr may be nil; when it is not, cluster groups are omitted and the
// error message recorded instead.
func NewSummary(source string, c *catalog.Catalog, findings []analyze.Finding, clusterErr error) *Summary {
	s := &Summary{
		Source:         source,
		GeneratedAt:    time.Now(),
		SiteCount:      c.Len(),
		SkippedEntries: c.Skipped(),
		Findings:       findings,
	}

	if clusterErr != nil {
		s.ClusterError = clusterErr.Error()
		return s
	}

	s.Clusters = make([][]string, analyze.ClusterCount)
	for _, site := range c.Sites() {
		label, ok := site.Extra[model.FieldCluster].(int)
		if !ok || label < 0 || label >= analyze.ClusterCount {
			continue
		}
		s.Clusters[label] = append(s.Clusters[label], site.Name)
	}
	return s
}
