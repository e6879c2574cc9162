package catalog

import "errors"

// Catalog loading and construction errors.
// These errors are wrapped with the source identifier or site name so that
// callers can diagnose failures without inspecting internals, while still
// matching the sentinel with errors.Is.
var (
	// ErrInvalidSource is returned when the source identifier is not a
	// ".json" path or URL. The caller must fix its configuration; no I/O is
	// attempted for such a source.
	ErrInvalidSource = errors.New("data source must be a .json file or URL")

	// ErrSourceUnavailable is returned when the source cannot be reached:
	// the file cannot be opened, the HTTP request fails, or the server
	// responds with a non-2xx status. The load attempt failed but may be
	// retried by the caller.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrMalformedData is returned when the source was retrieved but its
	// content does not parse as a JSON object of site entries.
	ErrMalformedData = errors.New("malformed site data")

	// ErrCatalogBuild is returned when a site entry lacks a required field.
	// One bad required field invalidates the whole dataset, so the entire
	// load aborts. Structurally corrupt entries (values that are not JSON
	// objects) are a deliberately more lenient case: they are skipped with
	// a logged diagnostic instead.
	ErrCatalogBuild = errors.New("catalog build failed")
)
