package vectorstore

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"disaster-chatbot-be/pkg/corpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordProvider produces deterministic unit vectors keyed on which terms
// the text mentions, enough for similarity ranking without a real model.
type keywordProvider struct {
	keywords []string
}

func (p *keywordProvider) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(p.keywords)+1)
	for i, kw := range p.keywords {
		if strings.Contains(strings.ToLower(text), kw) {
			vec[i] = 1
		}
	}
	vec[len(p.keywords)] = 0.1 // keep zero-keyword texts off the origin
	return normalize(vec), nil
}

func (p *keywordProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := p.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
	return v
}

type failingProvider struct{}

func (failingProvider) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("provider down")
}

func (failingProvider) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("provider down")
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), &keywordProvider{
		keywords: []string{"lũ", "sơ tán", "nước"},
	})
}

func chunksFor(tenantID string, texts ...string) []corpus.Chunk {
	cs := make([]corpus.Chunk, len(texts))
	for i, txt := range texts {
		cs[i] = corpus.Chunk{Text: txt, TenantID: tenantID}
	}
	return cs
}

func TestBuildThenExists(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Exists("bot-1"))

	_, err := store.Build(context.Background(), "bot-1", chunksFor("bot-1", "mực nước sông dâng cao"))
	require.NoError(t, err)

	assert.True(t, store.Exists("bot-1"))
	assert.False(t, store.Exists("bot-2"))
}

func TestBuildEmptyChunksFails(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Build(context.Background(), "bot-1", nil)
	require.Error(t, err)
	assert.False(t, store.Exists("bot-1"))
}

func TestBuildProviderFailureLeavesNoArtifact(t *testing.T) {
	store := NewStore(t.TempDir(), failingProvider{})
	_, err := store.Build(context.Background(), "bot-1", chunksFor("bot-1", "text"))
	require.Error(t, err)
	assert.False(t, store.Exists("bot-1"))
}

func TestLoadRoundTripRetrieval(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	texts := []string{
		"Mực nước sông Hồng hiện tại là 2.3m, trên mức báo động 1.",
		"Danh sách điểm sơ tán tại quận Hoàn Kiếm.",
		"Số điện thoại liên hệ cứu hộ: 114.",
	}
	_, err := store.Build(ctx, "bot-1", chunksFor("bot-1", texts...))
	require.NoError(t, err)

	idx, err := store.Load("bot-1")
	require.NoError(t, err)
	assert.Equal(t, texts, idx.Texts)
	assert.Len(t, idx.Vectors, 3)

	provider := &keywordProvider{keywords: []string{"lũ", "sơ tán", "nước"}}
	qv, err := provider.Embed(ctx, "mực nước bao nhiêu")
	require.NoError(t, err)

	results := idx.Search(qv, 1)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Text, "2.3m")
}

func TestLoadMissingIndex(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load("ghost")
	require.ErrorIs(t, err, ErrIndexNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Build(ctx, "bot-1", chunksFor("bot-1", "nội dung"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("bot-1"))
	assert.False(t, store.Exists("bot-1"))

	// second delete of the same tenant stays a no-op
	require.NoError(t, store.Delete("bot-1"))

	_, err = store.Load("bot-1")
	require.ErrorIs(t, err, ErrIndexNotFound)
}

func TestBuildOverwritesExistingIndex(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Build(ctx, "bot-1", chunksFor("bot-1", "phiên bản cũ"))
	require.NoError(t, err)

	_, err = store.Build(ctx, "bot-1", chunksFor("bot-1", "phiên bản mới", "thêm một đoạn"))
	require.NoError(t, err)

	idx, err := store.Load("bot-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"phiên bản mới", "thêm một đoạn"}, idx.Texts)
}

func TestLatestTenantID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.LatestTenantID()
	require.ErrorIs(t, err, ErrIndexNotFound)

	for _, tenant := range []string{"warnings-20250110", "warnings-20250302", "warnings-20250215"} {
		_, err := store.Build(ctx, tenant, chunksFor(tenant, "cảnh báo"))
		require.NoError(t, err)
	}

	latest, err := store.LatestTenantID()
	require.NoError(t, err)
	assert.Equal(t, "warnings-20250302", latest)
}

func TestSearchTopKBounds(t *testing.T) {
	idx := &Index{
		Dimension: 2,
		Vectors:   [][]float32{{1, 0}, {0, 1}},
		Texts:     []string{"a", "b"},
	}

	assert.Len(t, idx.Search([]float32{1, 0}, 10), 2)
	assert.Len(t, idx.Search([]float32{1, 0}, 0), 2) // non-positive falls back to default

	top := idx.Search([]float32{0.9, 0.1}, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].Text)
}
