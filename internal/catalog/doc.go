// Package catalog loads the site-definition dataset and maintains the
// ordered collection of site records built from it. It owns source
// resolution (local file or remote URL), dataset validation, NSFW
// filtering, and iteration.
package catalog
