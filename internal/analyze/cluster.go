package analyze

import (
	"errors"
	"fmt"

	"github.com/usergrep/usergrep/internal/catalog"
	"github.com/usergrep/usergrep/internal/model"
)

// ErrClustering is returned when the description corpus is too degenerate to
// partition: no sites, fewer sites than clusters, or no vocabulary left
// after stop-word removal. The catalog itself remains usable.
var ErrClustering = errors.New("description clustering failed")

// ClusterCount is the fixed number of description clusters.
const ClusterCount = 5

// clusterSeed pins the k-means random source so that repeated runs over the
// same catalog assign identical cluster labels.
const clusterSeed = 0

// ClusterDescriptions groups the catalog's sites by textual similarity of
// their free-text descriptions and annotates each record with its cluster.
//
// Descriptions (empty string when a site has none) are taken in catalog
// order, turned into TF-IDF vectors, and partitioned into ClusterCount
// clusters with seeded k-means. Each site's Extra["cluster"] is set to its
// assigned index in [0, ClusterCount). The catalog is mutated in place.
func ClusterDescriptions(c *catalog.Catalog) error {
	sites := c.Sites()
	if len(sites) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrClustering)
	}
	if len(sites) < ClusterCount {
		return fmt.Errorf("%w: %d sites for %d clusters", ErrClustering, len(sites), ClusterCount)
	}

	documents := make([]string, len(sites))
	for i, site := range sites {
		documents[i] = site.Description()
	}

	vectors, vocabSize := vectorize(documents)
	if vocabSize == 0 {
		return fmt.Errorf("%w: no terms left after stop-word removal", ErrClustering)
	}

	labels := kMeans(vectors, ClusterCount, clusterSeed)
	for i, site := range sites {
		site.Extra[model.FieldCluster] = labels[i]
	}
	return nil
}
