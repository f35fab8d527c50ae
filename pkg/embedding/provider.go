package embedding

import (
	"context"
	"math"
)

// Provider generates embedding vectors for corpus chunks and questions.
// Build-time and query-time embeddings must come from the same provider so
// they share one vector space.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch embeds many texts in one provider round-trip where the
	// backend supports it; result order matches input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// normalizeVector scales a vector to unit length. Similarity over the flat
// index is computed as a plain dot product, which requires magnitude 1 on
// both sides.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
