package model

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Site construction errors.
var (
	// ErrMissingField is returned when a required field is absent from a
	// raw site entry (or present with a non-string value).
	ErrMissingField = errors.New("missing required field")
	// ErrMissingPlaceholder is returned when the username URL template does
	// not contain the substitution placeholder.
	ErrMissingPlaceholder = errors.New("username url template has no placeholder")
)

// UsernamePlaceholder is the token inside a username URL template that is
// replaced with the candidate username. For example,
// "https://example.com/users/{}" probes "https://example.com/users/alice".
const UsernamePlaceholder = "{}"

// Raw dataset field names. The upstream data file uses these exact keys.
const (
	// FieldHomeURL holds the site's root URL.
	FieldHomeURL = "urlMain"
	// FieldUsernameURL holds the username URL template.
	FieldUsernameURL = "url"
	// FieldClaimedUsername holds a username known to exist on the site.
	FieldClaimedUsername = "username_claimed"
	// FieldUnclaimedUsername holds a username known not to exist on the site.
	FieldUnclaimedUsername = "username_unclaimed"
	// FieldNSFW flags sites with adult content.
	FieldNSFW = "isNSFW"
	// FieldDescription holds free-text describing the site.
	FieldDescription = "description"
	// FieldCluster is written by the description clusterer.
	FieldCluster = "cluster"
)

// unclaimedTokenBytes is the number of random bytes behind a generated
// unclaimed username. Matches the entropy of the upstream dataset's
// convention for throwaway probe usernames.
const unclaimedTokenBytes = 10

// Site describes one website's username-probing metadata.
// It is immutable after construction except for the Extra map, which the
// description clusterer annotates in place.
type Site struct {
	// Name uniquely identifies the site within a catalog.
	Name string

	// HomeURL is the site's root URL.
	HomeURL string

	// UsernameURLTemplate is the profile URL with UsernamePlaceholder where
	// the username is substituted.
	UsernameURLTemplate string

	// ClaimedUsername is known to exist on the site. A downstream prober
	// uses it as ground truth for "exists" detection.
	ClaimedUsername string

	// UnclaimedUsername is guaranteed not to exist on the site. Defaults to
	// a random URL-safe token so it cannot collide with a real account.
	UnclaimedUsername string

	// Sensitive reports whether the site is flagged NSFW.
	Sensitive bool

	// Extra retains every raw field of the site entry verbatim. Detection
	// method hints, description text and similar metadata live here; the
	// catalog core does not interpret them beyond the anomaly and cluster
	// passes.
	Extra map[string]any
}

// NewSite constructs a Site from its name and raw field map.
//
// The raw map must contain string values for urlMain, url and
// username_claimed; a missing or non-string value fails construction with an
// error wrapping ErrMissingField that names the site and field. The username
// URL template must contain UsernamePlaceholder. isNSFW is optional and
// defaults to false. All raw fields are retained in Extra.
func NewSite(name string, raw map[string]any) (*Site, error) {
	homeURL, err := requiredString(name, raw, FieldHomeURL)
	if err != nil {
		return nil, err
	}
	template, err := requiredString(name, raw, FieldUsernameURL)
	if err != nil {
		return nil, err
	}
	claimed, err := requiredString(name, raw, FieldClaimedUsername)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(template, UsernamePlaceholder) {
		return nil, fmt.Errorf("site %q: %w", name, ErrMissingPlaceholder)
	}

	unclaimed, _ := raw[FieldUnclaimedUsername].(string)
	// The unclaimed username must differ from the claimed one; a missing or
	// conflicting value is replaced with a fresh random token per site.
	for unclaimed == "" || unclaimed == claimed {
		unclaimed = newUnclaimedToken()
	}

	sensitive, _ := raw[FieldNSFW].(bool)

	return &Site{
		Name:                name,
		HomeURL:             homeURL,
		UsernameURLTemplate: template,
		ClaimedUsername:     claimed,
		UnclaimedUsername:   unclaimed,
		Sensitive:           sensitive,
		Extra:               raw,
	}, nil
}

// String returns "<name> (<home_url>)".
func (s *Site) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.HomeURL)
}

// ProfileURL substitutes username into the username URL template.
// This is the URL a downstream prober requests to test the username.
func (s *Site) ProfileURL(username string) string {
	return strings.ReplaceAll(s.UsernameURLTemplate, UsernamePlaceholder, username)
}

// Description returns the free-text description from Extra, or "" when the
// dataset carries none.
func (s *Site) Description() string {
	desc, _ := s.Extra[FieldDescription].(string)
	return desc
}

// requiredString extracts a required string field from the raw entry.
func requiredString(site string, raw map[string]any, field string) (string, error) {
	v, ok := raw[field]
	if !ok {
		return "", fmt.Errorf("site %q: %w: %q", site, ErrMissingField, field)
	}
	s, ok := v.(string)
	if !ok {
		// A non-string value is as unusable as an absent one.
		return "", fmt.Errorf("site %q: %w: %q is not a string", site, ErrMissingField, field)
	}
	return s, nil
}

// newUnclaimedToken returns a URL-safe random token suitable as a username
// that is effectively guaranteed not to exist anywhere.
func newUnclaimedToken() string {
	buf := make([]byte, unclaimedTokenBytes)
	// crypto/rand.Read never fails on supported platforms; a short read
	// would still yield a usable token.
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
