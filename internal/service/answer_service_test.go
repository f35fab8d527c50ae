package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"disaster-chatbot-be/internal/constant"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/llm"
	"disaster-chatbot-be/pkg/vectorstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bagProvider embeds text as a normalized keyword-presence vector, which is
// enough to make retrieval rank deterministically.
type bagProvider struct {
	keywords []string
	err      error
}

func (p *bagProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if p.err != nil {
		return nil, p.err
	}
	vec := make([]float32, len(p.keywords)+1)
	for i, kw := range p.keywords {
		if strings.Contains(strings.ToLower(text), kw) {
			vec[i] = 1
		}
	}
	vec[len(p.keywords)] = 0.1
	var sum float64
	for _, x := range vec {
		sum += float64(x) * float64(x)
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func (p *bagProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
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

func buildTrainedStore(t *testing.T, tenantID string, texts ...string) (*vectorstore.Store, *bagProvider) {
	t.Helper()
	provider := &bagProvider{keywords: []string{"nước", "sơ tán", "liên hệ"}}
	store := vectorstore.NewStore(t.TempDir(), provider)

	if len(texts) > 0 {
		chunks := make([]corpus.Chunk, len(texts))
		for i, txt := range texts {
			chunks[i] = corpus.Chunk{Text: txt, TenantID: tenantID}
		}
		_, err := store.Build(context.Background(), tenantID, chunks)
		require.NoError(t, err)
	}
	return store, provider
}

func TestAskUntrainedTenant(t *testing.T) {
	store, provider := buildTrainedStore(t, "")
	mock := &recordingLLM{reply: "should not be called"}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "ghost-bot", "Mực nước bao nhiêu?")
	require.NoError(t, err)
	assert.Equal(t, constant.AnswerNotTrained, res.Answer)
	assert.Zero(t, mock.chatCalls)
}

func TestAskEmptyTenantNoIndexes(t *testing.T) {
	store, provider := buildTrainedStore(t, "")
	svc := NewAnswerService(store, provider, &recordingLLM{}, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "", "câu hỏi")
	require.NoError(t, err)
	assert.Equal(t, constant.AnswerNotTrained, res.Answer)
}

func TestAskEmptyTenantFallsBackToLatest(t *testing.T) {
	store, provider := buildTrainedStore(t, "warnings-20250301",
		"Mực nước sông Hồng hiện tại là 2.3m.")
	mock := &recordingLLM{reply: "Mực nước sông Hồng là 2.3m."}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "", "Mực nước hiện tại?")
	require.NoError(t, err)
	assert.Equal(t, "Mực nước sông Hồng là 2.3m.", res.Answer)
	assert.Equal(t, 1, mock.chatCalls)
}

func TestAskInjectsRetrievedContext(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1",
		"Mực nước sông Hồng hiện tại là 2.3m, trên báo động 1.",
		"Số liên hệ cứu hộ: 114.")
	mock := &recordingLLM{reply: "2.3m"}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	_, err := svc.Ask(context.Background(), "bot-1", "Mực nước bao nhiêu?")
	require.NoError(t, err)

	require.NotEmpty(t, mock.lastHistory)
	system := mock.lastHistory[0]
	assert.Equal(t, constant.ChatMessageRoleSystem, system.Role)
	assert.Contains(t, system.Content, "2.3m")
	// last message is the question itself
	last := mock.lastHistory[len(mock.lastHistory)-1]
	assert.Equal(t, constant.ChatMessageRoleUser, last.Role)
	assert.Equal(t, "Mực nước bao nhiêu?", last.Content)
}

func TestAskNormalizesParaphrasedRefusal(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1", "Nội dung về bão.")
	tests := []struct {
		name  string
		reply string
	}{
		{"vietnamese paraphrase", "Rất tiếc, tôi không đủ dữ liệu về vấn đề đó."},
		{"english paraphrase", "Sorry, there is insufficient data to answer."},
		{"no relevant info", "I found no relevant information in the context."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAnswerService(store, provider, &recordingLLM{reply: tt.reply}, nopLogger{}, 5, 0)
			res, err := svc.Ask(context.Background(), "bot-1", "Giá vàng hôm nay?")
			require.NoError(t, err)
			assert.Equal(t, constant.AnswerRefusal, res.Answer)
		})
	}
}

func TestAskCollapsesWhitespace(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1", "Nội dung.")
	mock := &recordingLLM{reply: "  Dòng một.\n\n  Dòng   hai.  "}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "bot-1", "?")
	require.NoError(t, err)
	assert.Equal(t, "Dòng một. Dòng hai.", res.Answer)
}

func TestAskSwallowsGenerationFailure(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1", "Nội dung.")
	svc := NewAnswerService(store, provider, &recordingLLM{err: errProviderDown}, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "bot-1", "?")
	require.NoError(t, err)
	assert.Equal(t, constant.AnswerUnavailable, res.Answer)
}

func TestAskSwallowsEmbeddingFailure(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1", "Nội dung.")
	provider.err = errProviderDown
	mock := &recordingLLM{reply: "unused"}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	res, err := svc.Ask(context.Background(), "bot-1", "?")
	require.NoError(t, err)
	assert.Equal(t, constant.AnswerUnavailable, res.Answer)
	assert.Zero(t, mock.chatCalls)
}

func TestAskWithHistoryOrdering(t *testing.T) {
	store, provider := buildTrainedStore(t, "bot-1", "Nội dung.")
	mock := &recordingLLM{reply: "ok"}
	svc := NewAnswerService(store, provider, mock, nopLogger{}, 5, 0)

	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "câu trước"},
		{Role: constant.ChatMessageRoleAssistant, Content: "trả lời trước"},
	}
	_, err := svc.AskWithHistory(context.Background(), "bot-1", "câu mới", history)
	require.NoError(t, err)

	require.Len(t, mock.lastHistory, 4)
	assert.Equal(t, constant.ChatMessageRoleSystem, mock.lastHistory[0].Role)
	assert.Equal(t, "câu trước", mock.lastHistory[1].Content)
	assert.Equal(t, "trả lời trước", mock.lastHistory[2].Content)
	assert.Equal(t, "câu mới", mock.lastHistory[3].Content)
}
