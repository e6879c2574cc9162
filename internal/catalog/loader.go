package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// schemaKey is dataset metadata, not a site entry, and is dropped after
// parsing.
const schemaKey = "$schema"

// RawEntry is one top-level site entry exactly as it appears in the dataset:
// the site name and its still-undecoded field map. Entries keep the order in
// which they appear in the source document.
type RawEntry struct {
	// Name is the top-level key identifying the site.
	Name string
	// Data is the raw JSON value for the entry, normally an object.
	Data json.RawMessage
}

// Loader resolves a data source and retrieves raw site entries from it.
//
// The default source and the HTTP client are injected rather than read from
// globals so that tests can point the loader at a fixture file or a local
// test server.
type Loader struct {
	// Client performs remote fetches. The zero value falls back to
	// http.DefaultClient.
	Client *http.Client

	// DefaultSource is used when Load is called with an empty source.
	DefaultSource string

	// UserAgent is sent with remote fetches when non-empty.
	UserAgent string

	// MaxBodySize caps how many bytes of a remote response are read.
	// Zero means no cap.
	MaxBodySize int64
}

// Load resolves source and returns its site entries in document order.
//
// An empty source falls back to the loader's DefaultSource. The source must
// end in ".json" (case-insensitive); anything else fails with
// ErrInvalidSource before any I/O. Sources starting with "http" are fetched
// over the network; everything else is treated as a local path, absolute or
// relative to the current working directory. A reserved top-level "$schema"
// key is dropped from the result.
func (l *Loader) Load(ctx context.Context, source string) ([]RawEntry, error) {
	if source == "" {
		source = l.DefaultSource
	}

	if !strings.HasSuffix(strings.ToLower(source), ".json") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(strings.ToLower(source), "http") {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	entries, err := parseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedData, source, err)
	}
	return entries, nil
}

// fetch retrieves the dataset from a remote URL.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSourceUnavailable, url, err)
	}
	if l.UserAgent != "" {
		req.Header.Set("User-Agent", l.UserAgent)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSourceUnavailable, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read side already consumed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %q: unexpected status %s", ErrSourceUnavailable, url, resp.Status)
	}

	var body io.Reader = resp.Body
	if l.MaxBodySize > 0 {
		body = io.LimitReader(resp.Body, l.MaxBodySize)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSourceUnavailable, url, err)
	}
	return data, nil
}

// readFile retrieves the dataset from the local filesystem.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided data path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSourceUnavailable, path, err)
	}
	return data, nil
}

// parseEntries decodes the top-level JSON object while preserving key order.
//
// encoding/json decodes objects into unordered maps, so the top level is
// walked with the decoder's token stream instead: one key token, then one
// raw value, per entry. Duplicate keys keep the first position and take the
// last value, matching the overwrite semantics of a generic JSON object.
func parseEntries(data []byte) ([]RawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top level is not an object")
	}

	var (
		entries []RawEntry
		index   = make(map[string]int)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v for object key", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		if name == schemaKey {
			continue
		}
		if i, seen := index[name]; seen {
			entries[i].Data = raw
			continue
		}
		index[name] = len(entries)
		entries = append(entries, RawEntry{Name: name, Data: raw})
	}

	// Consume the closing brace; a truncated document surfaces here.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}
