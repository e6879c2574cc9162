package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/usergrep/usergrep/internal/analyze"
	"github.com/usergrep/usergrep/internal/catalog"
)

// testCatalog builds a five-site catalog with distinctive descriptions and
// one malformed home URL.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	descriptions := []string{
		"photo sharing community",
		"programming discussion forum",
		"live gaming broadcasts",
		"professional career network",
		"music streaming playlists",
	}
	entries := make([]catalog.RawEntry, 0, len(descriptions))
	for i, desc := range descriptions {
		home := fmt.Sprintf("https://site%d.example.com", i)
		if i == 0 {
			home = "not a url"
		}
		data := fmt.Sprintf(
			`{"urlMain": %q, "url": "https://example.com/{}", "username_claimed": "admin", "description": %q}`,
			home, desc)
		entries = append(entries, catalog.RawEntry{
			Name: fmt.Sprintf("Site%d", i),
			Data: json.RawMessage(data),
		})
	}

	c, err := catalog.Build(entries, nil)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// testSummary runs the analysis passes and assembles a summary.
func testSummary(t *testing.T) *Summary {
	t.Helper()

	c := testCatalog(t)
	findings := analyze.DetectAnomalies(c, nil)
	clusterErr := analyze.ClusterDescriptions(c)
	return NewSummary("testdata/data.json", c, findings, clusterErr)
}

func TestNewSummary(t *testing.T) {
	t.Parallel()

	t.Run("collects counts, findings and cluster groups", func(t *testing.T) {
		t.Parallel()
		s := testSummary(t)

		if s.SiteCount != 5 {
			t.Errorf("expected 5 sites, got %d", s.SiteCount)
		}
		if len(s.Findings) != 1 {
			t.Fatalf("expected 1 finding, got %v", s.Findings)
		}
		if s.Findings[0].Site != "Site0" {
			t.Errorf("expected finding for Site0, got %q", s.Findings[0].Site)
		}
		if s.ClusterError != "" {
			t.Fatalf("expected clustering to succeed, got %q", s.ClusterError)
		}
		if len(s.Clusters) != analyze.ClusterCount {
			t.Fatalf("expected %d cluster groups, got %d", analyze.ClusterCount, len(s.Clusters))
		}

		var total int
		for _, names := range s.Clusters {
			total += len(names)
		}
		if total != 5 {
			t.Errorf("expected all 5 sites across clusters, got %d", total)
		}
	})

	t.Run("records clustering failure without cluster groups", func(t *testing.T) {
		t.Parallel()
		c := testCatalog(t)
		s := NewSummary("testdata/data.json", c, nil, errors.New("degenerate corpus"))

		if s.ClusterError != "degenerate corpus" {
			t.Errorf("expected cluster error recorded, got %q", s.ClusterError)
		}
		if s.Clusters != nil {
			t.Errorf("expected no cluster groups, got %v", s.Clusters)
		}
	})
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewSimpleWriter(&buf).Write(testSummary(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != buf.Len() {
		t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
	}

	out := buf.String()
	for _, want := range []string{"Site Catalog Report", "Sites:           5", "Site0", "cluster 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(testSummary(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got %v:\n%s", err, buf.String())
	}
	if decoded.SiteCount != 5 {
		t.Errorf("expected 5 sites, got %d", decoded.SiteCount)
	}
	if len(decoded.Findings) != 1 {
		t.Errorf("expected 1 finding, got %v", decoded.Findings)
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testSummary(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Site Catalog Report", "## Anomalies", "## Description Clusters", "Site0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
