package analyze

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("stop words are removed", func(t *testing.T) {
		t.Parallel()
		got := tokenize("the quick brown fox and the lazy dog")
		for _, term := range got {
			if term == "the" || term == "and" {
				t.Errorf("expected stop word %q to be removed, tokens %v", term, got)
			}
		}
		if len(got) == 0 {
			t.Fatal("expected content words to survive")
		}
	})

	t.Run("text is lowercased", func(t *testing.T) {
		t.Parallel()
		got := tokenize("Programming FORUM")
		want := []string{"programming", "forum"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty text yields no tokens", func(t *testing.T) {
		t.Parallel()
		if got := tokenize(""); len(got) != 0 {
			t.Errorf("expected no tokens, got %v", got)
		}
	})
}

func TestVectorize(t *testing.T) {
	t.Parallel()

	t.Run("rows are l2 normalized", func(t *testing.T) {
		t.Parallel()
		vectors, _ := vectorize([]string{
			"photo sharing community",
			"programming forum community",
		})

		for i, row := range vectors {
			var sum float64
			for _, v := range row {
				sum += v * v
			}
			if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
				t.Errorf("row %d has norm %v, expected 1", i, math.Sqrt(sum))
			}
		}
	})

	t.Run("empty documents stay zero rows", func(t *testing.T) {
		t.Parallel()
		vectors, vocabSize := vectorize([]string{"", "photo sharing"})

		if vocabSize == 0 {
			t.Fatal("expected non-empty vocabulary")
		}
		for _, v := range vectors[0] {
			if v != 0 {
				t.Errorf("expected zero row for empty document, got %v", vectors[0])
				break
			}
		}
	})

	t.Run("distinctive terms outweigh common ones", func(t *testing.T) {
		t.Parallel()
		// "community" appears in every document, "esports" in one.
		vectors, vocabSize := vectorize([]string{
			"community esports",
			"community photos",
			"community music",
		})
		if vocabSize != 4 {
			t.Fatalf("expected vocabulary of 4, got %d", vocabSize)
		}

		// Sorted vocabulary: community, esports, music, photos.
		row := vectors[0]
		if row[1] <= row[0] {
			t.Errorf("expected esports weight %v to exceed community weight %v", row[1], row[0])
		}
	})

	t.Run("stop-word-only corpus has empty vocabulary", func(t *testing.T) {
		t.Parallel()
		_, vocabSize := vectorize([]string{"the and of", "a an the"})
		if vocabSize != 0 {
			t.Errorf("expected empty vocabulary, got %d", vocabSize)
		}
	})
}

func TestKMeans(t *testing.T) {
	t.Parallel()

	// Two tight groups far apart, k=2.
	vectors := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
	}

	t.Run("separates well-separated groups", func(t *testing.T) {
		t.Parallel()
		labels := kMeans(vectors, 2, 0)

		if labels[0] != labels[1] || labels[1] != labels[2] {
			t.Errorf("expected first group in one cluster, got %v", labels)
		}
		if labels[3] != labels[4] || labels[4] != labels[5] {
			t.Errorf("expected second group in one cluster, got %v", labels)
		}
		if labels[0] == labels[3] {
			t.Errorf("expected the groups to be separated, got %v", labels)
		}
	})

	t.Run("same seed gives same labels", func(t *testing.T) {
		t.Parallel()
		a := kMeans(vectors, 2, 0)
		b := kMeans(vectors, 2, 0)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected deterministic labels, got %v and %v", a, b)
		}
	})

	t.Run("every cluster index stays in range", func(t *testing.T) {
		t.Parallel()
		labels := kMeans(vectors, 3, 0)
		for i, label := range labels {
			if label < 0 || label >= 3 {
				t.Errorf("vector %d has out-of-range label %d", i, label)
			}
		}
	})
}
