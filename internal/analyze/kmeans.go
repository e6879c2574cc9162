package analyze

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// maxKMeansIterations bounds Lloyd's algorithm. Assignments on corpora of
// this size converge long before the bound; it exists to guarantee
// termination on pathological input.
const maxKMeansIterations = 100

// kMeans partitions vectors into k clusters and returns the cluster index
// of each vector.
//
// Centroids are seeded with k-means++ from an explicitly seeded source, so
// the same input and seed always produce the same assignments. Callers must
// guarantee len(vectors) >= k. Ties in distance go to the lower cluster
// index.
func kMeans(vectors [][]float64, k int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic seeding is the point

	centroids := seedCentroids(vectors, k, rng)
	assignments := make([]int, len(vectors))

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, v := range vectors {
			nearest := nearestCentroid(v, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		recomputeCentroids(vectors, assignments, centroids)
	}
	return assignments
}

// seedCentroids picks k initial centroids with k-means++: the first uniformly
// at random, each subsequent one with probability proportional to its squared
// distance from the nearest centroid chosen so far.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	dim := len(vectors[0])
	centroids := make([][]float64, 0, k)

	first := make([]float64, dim)
	copy(first, vectors[rng.Intn(len(vectors))])
	centroids = append(centroids, first)

	distances := make([]float64, len(vectors))
	for len(centroids) < k {
		var total float64
		for i, v := range vectors {
			d := floats.Distance(v, centroids[len(centroids)-1], 2)
			d *= d
			if len(centroids) == 1 || d < distances[i] {
				distances[i] = d
			}
			total += distances[i]
		}

		next := 0
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range distances {
				target -= d
				if target <= 0 {
					next = i
					break
				}
			}
		} else {
			// All points coincide with a centroid; any choice is equivalent.
			next = rng.Intn(len(vectors))
		}

		c := make([]float64, dim)
		copy(c, vectors[next])
		centroids = append(centroids, c)
	}
	return centroids
}

// nearestCentroid returns the index of the centroid closest to v.
func nearestCentroid(v []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for j, c := range centroids {
		if d := floats.Distance(v, c, 2); d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

// recomputeCentroids moves each centroid to the mean of its assigned
// vectors. A centroid that lost all members is re-seeded on the vector
// farthest from its current centroid, so every cluster index stays in use.
func recomputeCentroids(vectors [][]float64, assignments []int, centroids [][]float64) {
	counts := make([]int, len(centroids))
	for j := range centroids {
		for i := range centroids[j] {
			centroids[j][i] = 0
		}
	}
	for i, v := range vectors {
		j := assignments[i]
		floats.Add(centroids[j], v)
		counts[j]++
	}

	for j := range centroids {
		if counts[j] == 0 {
			far := farthestVector(vectors, assignments, centroids)
			copy(centroids[j], vectors[far])
			assignments[far] = j
			counts[j] = 1
			continue
		}
		floats.Scale(1/float64(counts[j]), centroids[j])
	}
}

// farthestVector returns the index of the vector farthest from the centroid
// it is currently assigned to.
func farthestVector(vectors [][]float64, assignments []int, centroids [][]float64) int {
	far, farDist := 0, -1.0
	for i, v := range vectors {
		if d := floats.Distance(v, centroids[assignments[i]], 2); d > farDist {
			far = i
			farDist = d
		}
	}
	return far
}
