package vectorstore

import (
	"sort"
)

// Index is a flat similarity-searchable structure over chunk embeddings.
// Vectors are unit-length, so cosine similarity reduces to a dot product.
type Index struct {
	Dimension int
	Vectors   [][]float32
	Texts     []string
}

// SearchResult pairs a chunk text with its similarity score.
type SearchResult struct {
	Text  string
	Score float32
}

// Search returns the topK most similar chunks in descending score order.
func (idx *Index) Search(vector []float32, topK int) []SearchResult {
	if topK <= 0 {
		topK = 5
	}

	results := make([]SearchResult, 0, len(idx.Vectors))
	for i, v := range idx.Vectors {
		results = append(results, SearchResult{
			Text:  idx.Texts[i],
			Score: dot(v, vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
