package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// datasetJSON is a small dataset with one NSFW site and unsorted names.
const datasetJSON = `{
  "zeta": {"urlMain": "https://zeta.example.com", "url": "https://zeta.example.com/{}", "username_claimed": "admin"},
  "Alpha": {"urlMain": "https://alpha.example.com", "url": "https://alpha.example.com/{}", "username_claimed": "admin"},
  "Adult": {"urlMain": "https://adult.example.com", "url": "https://adult.example.com/{}", "username_claimed": "admin", "isNSFW": true}
}`

// writeDataset writes datasetJSON to a temp file and returns its path.
func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(datasetJSON), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSitesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists site names in case-insensitive order", func(t *testing.T) {
		t.Parallel()
		out, err := runCommand(t, "sites", "--data", writeDataset(t))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		want := []string{"Adult", "Alpha", "zeta"}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %q", len(want), out)
		}
		for i, name := range want {
			if lines[i] != name {
				t.Errorf("line %d: expected %q, got %q", i, name, lines[i])
			}
		}
	})

	t.Run("safe mode removes NSFW sites", func(t *testing.T) {
		t.Parallel()
		out, err := runCommand(t, "sites", "--data", writeDataset(t), "--safe")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(out, "Adult") {
			t.Errorf("expected NSFW site removed, got %q", out)
		}
	})

	t.Run("keep list protects NSFW sites case-insensitively", func(t *testing.T) {
		t.Parallel()
		out, err := runCommand(t, "sites", "--data", writeDataset(t), "--safe", "--keep", "adult")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "Adult") {
			t.Errorf("expected kept NSFW site in output, got %q", out)
		}
	})

	t.Run("non-json source fails", func(t *testing.T) {
		t.Parallel()
		_, err := runCommand(t, "sites", "--data", "data.csv")
		if err == nil {
			t.Error("expected an error for a non-json source")
		}
	})

	t.Run("missing file fails with a retry hint", func(t *testing.T) {
		t.Parallel()
		_, err := runCommand(t, "sites", "--data", filepath.Join(t.TempDir(), "absent.json"))
		if err == nil {
			t.Fatal("expected an error for a missing dataset")
		}
		if !strings.Contains(err.Error(), "retry") {
			t.Errorf("expected a retry hint, got %v", err)
		}
	})
}
