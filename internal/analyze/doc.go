// Package analyze provides read-mostly analysis passes over a site catalog:
// a pattern-based anomaly lint that reports malformed field values, and a
// description clusterer that groups sites by TF-IDF similarity of their
// free-text descriptions.
package analyze
