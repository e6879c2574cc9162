package analyze

import (
	"log/slog"
	"regexp"

	"github.com/usergrep/usergrep/internal/catalog"
	"github.com/usergrep/usergrep/internal/model"
)

// Finding reports one malformed field value on one site.
type Finding struct {
	// Site is the name of the affected site.
	Site string `json:"site"`
	// Field is the raw dataset key whose value failed its pattern.
	Field string `json:"field"`
	// Value is the offending value.
	Value string `json:"value"`
}

// anomalyRules are the field patterns every site entry is linted against.
// The home URL must look like an HTTP(S) URL with a host; the claimed
// username must consist of word characters only. Values that probing would
// choke on show up here first.
var anomalyRules = []struct {
	field   string
	pattern *regexp.Regexp
}{
	{model.FieldHomeURL, regexp.MustCompile(`^https?://\S+\.\S+$`)},
	{model.FieldClaimedUsername, regexp.MustCompile(`^\w+$`)},
}

// DetectAnomalies lints every site's raw fields against the fixed pattern
// rules and returns the findings in catalog order. Each finding is also
// logged at warn level.
//
// This is a best-effort lint pass, not a validation gate: it never fails,
// never mutates a record, and a rule only applies when the field is present
// with a string value.
func DetectAnomalies(c *catalog.Catalog, logger *slog.Logger) []Finding {
	if logger == nil {
		logger = slog.Default()
	}

	var findings []Finding
	for _, site := range c.Sites() {
		for _, rule := range anomalyRules {
			value, ok := site.Extra[rule.field].(string)
			if !ok {
				continue
			}
			if rule.pattern.MatchString(value) {
				continue
			}
			findings = append(findings, Finding{Site: site.Name, Field: rule.field, Value: value})
			logger.Warn("anomaly detected",
				"site", site.Name, "field", rule.field, "value", value)
		}
	}
	return findings
}
