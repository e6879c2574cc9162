package analyze

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
)

// stopwordLang selects the English stop-word list for tokenization.
const stopwordLang = "en"

// tokenize lowercases text, strips punctuation and English stop words, and
// splits it into terms. Distinctive words survive; filler does not.
func tokenize(text string) []string {
	cleaned := stopwords.CleanString(strings.ToLower(text), stopwordLang, false)
	return strings.Fields(cleaned)
}

// vectorize turns documents into l2-normalized TF-IDF row vectors.
//
// Term weights use smooth inverse document frequency,
// idf = ln((1+n)/(1+df)) + 1, so that terms appearing in fewer documents
// carry more weight and terms appearing everywhere still carry some. Rows of
// all-zero documents stay zero. The vocabulary index is sorted, which keeps
// vectors (and therefore downstream clustering) independent of map
// iteration order.
func vectorize(documents []string) (vectors [][]float64, vocabSize int) {
	tokenized := make([][]string, len(documents))
	df := make(map[string]int)
	for i, doc := range documents {
		tokenized[i] = tokenize(doc)

		seen := make(map[string]struct{})
		for _, term := range tokenized[i] {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(documents))
	for i, term := range vocab {
		index[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors = make([][]float64, len(documents))
	for i, terms := range tokenized {
		row := make([]float64, len(vocab))
		for _, term := range terms {
			row[index[term]] += idf[index[term]]
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		vectors[i] = row
	}
	return vectors, len(vocab)
}
