package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/usergrep/usergrep/internal/model"
)

// Catalog is an ordered collection of site records keyed by site name.
// Insertion order follows the source dataset. A Catalog is exclusively owned
// by the caller that built it; it is not safe for concurrent mutation.
type Catalog struct {
	// order holds site names in dataset order.
	order []string
	// sites maps each name in order to its record.
	sites map[string]*model.Site
	// skipped counts structurally corrupt entries dropped during Build.
	skipped int
}

// Build constructs a Catalog from raw dataset entries.
//
// Entries whose value is not a JSON object reflect gross structural
// corruption of a single entry; they are skipped with a warning and do not
// fail the build. An entry missing a required field is a content error that
// marks the whole dataset corrupt: the build aborts with an error wrapping
// ErrCatalogBuild and the underlying cause.
func Build(entries []RawEntry, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{sites: make(map[string]*model.Site, len(entries))}
	for _, entry := range entries {
		var raw map[string]any
		if err := json.Unmarshal(entry.Data, &raw); err != nil {
			logger.Warn("skipping structurally corrupt site entry",
				"site", entry.Name, "error", err)
			c.skipped++
			continue
		}

		site, err := model.NewSite(entry.Name, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogBuild, err)
		}

		if _, seen := c.sites[entry.Name]; !seen {
			c.order = append(c.order, entry.Name)
		}
		c.sites[entry.Name] = site
	}
	return c, nil
}

// Len returns the number of sites in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Skipped returns how many structurally corrupt entries were dropped while
// building the catalog.
func (c *Catalog) Skipped() int {
	return c.skipped
}

// Site returns the record for name, or nil if the catalog has no such site.
func (c *Catalog) Site(name string) *model.Site {
	return c.sites[name]
}

// Sites returns every record in insertion order. The slice is freshly
// allocated on each call, so ranging over it twice without an intervening
// mutation yields the same sequence both times.
func (c *Catalog) Sites() []*model.Site {
	out := make([]*model.Site, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sites[name])
	}
	return out
}

// SiteNames returns all site names in case-insensitive lexicographic order.
func (c *Catalog) SiteNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)

	collate.New(language.Und, collate.IgnoreCase).SortStrings(names)
	return names
}

// RemoveSensitive removes every NSFW site whose name is not in keep.
// The keep list is matched case-insensitively using Unicode case folding.
// The catalog is mutated in place; applying the filter twice is a no-op the
// second time.
func (c *Catalog) RemoveSensitive(keep []string) {
	fold := cases.Fold()

	keepSet := make(map[string]struct{}, len(keep))
	for _, name := range keep {
		keepSet[fold.String(name)] = struct{}{}
	}

	remaining := c.order[:0]
	for _, name := range c.order {
		if c.sites[name].Sensitive {
			if _, ok := keepSet[fold.String(name)]; !ok {
				delete(c.sites, name)
				continue
			}
		}
		remaining = append(remaining, name)
	}
	c.order = remaining
}
