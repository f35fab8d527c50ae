package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"disaster-chatbot-be/internal/constant"
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/pkg/embedding"
	"disaster-chatbot-be/pkg/llm"
	"disaster-chatbot-be/pkg/vectorstore"
)

// IAnswerService answers questions against a tenant's trained corpus.
type IAnswerService interface {
	Ask(ctx context.Context, tenantID, question string) (*dto.AskResponse, error)
	// AskWithHistory prepends prior conversation turns (most-recent-last,
	// excluding the message being answered) to the generation call.
	AskWithHistory(ctx context.Context, tenantID, question string, history []llm.Message) (string, error)
}

type answerService struct {
	store             *vectorstore.Store
	embeddingProvider embedding.Provider
	llmProvider       llm.LLMProvider
	logger            logger.ILogger
	topK              int
	scoreThreshold    float32
}

func NewAnswerService(
	store *vectorstore.Store,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	topK int,
	scoreThreshold float64,
) IAnswerService {
	if topK <= 0 {
		topK = 5
	}
	return &answerService{
		store:             store,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		logger:            sysLogger,
		topK:              topK,
		scoreThreshold:    float32(scoreThreshold),
	}
}

func (s *answerService) Ask(ctx context.Context, tenantID, question string) (*dto.AskResponse, error) {
	answer, err := s.AskWithHistory(ctx, tenantID, question, nil)
	if err != nil {
		return nil, err
	}
	return &dto.AskResponse{Answer: answer}, nil
}

// AskWithHistory never fails on remote errors: they are logged and replaced
// with a user-facing apology so the conversation keeps flowing. An empty
// tenantID falls back to the latest trained tenant (date-stamped ids make
// lexicographic order chronological).
func (s *answerService) AskWithHistory(ctx context.Context, tenantID, question string, history []llm.Message) (string, error) {
	if tenantID == "" {
		latest, err := s.store.LatestTenantID()
		if err != nil {
			return constant.AnswerNotTrained, nil
		}
		tenantID = latest
	}

	idx, err := s.store.Load(tenantID)
	if err != nil {
		if errors.Is(err, vectorstore.ErrIndexNotFound) {
			return constant.AnswerNotTrained, nil
		}
		s.logger.Error("answer", "failed to load index", map[string]interface{}{
			"tenant_id": tenantID, "error": err.Error(),
		})
		return constant.AnswerUnavailable, nil
	}

	questionVector, err := s.embeddingProvider.Embed(ctx, question)
	if err != nil {
		s.logger.Error("answer", "failed to embed question", map[string]interface{}{
			"tenant_id": tenantID, "error": err.Error(),
		})
		return constant.AnswerUnavailable, nil
	}

	results := idx.Search(questionVector, s.topK)
	if s.scoreThreshold > 0 {
		filtered := results[:0]
		for _, r := range results {
			if r.Score >= s.scoreThreshold {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	var system string
	if len(results) > 0 {
		contextBlock := make([]string, len(results))
		for i, r := range results {
			contextBlock[i] = r.Text
		}
		system = fmt.Sprintf(constant.AnswerContextPromptV1, strings.Join(contextBlock, "\n"))
	} else {
		system = constant.AnswerFallbackPromptV1
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: system})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: question})

	reply, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Error("answer", "generation call failed", map[string]interface{}{
			"tenant_id": tenantID, "error": err.Error(),
		})
		return constant.AnswerUnavailable, nil
	}

	return normalizeAnswer(reply), nil
}

// normalizeAnswer collapses whitespace runs and maps any paraphrased
// "insufficient data" reply onto the canonical refusal string.
func normalizeAnswer(raw string) string {
	answer := strings.Join(strings.Fields(raw), " ")

	lower := strings.ToLower(answer)
	for _, phrase := range constant.InsufficientDataPhrases {
		if strings.Contains(lower, phrase) {
			return constant.AnswerRefusal
		}
	}
	return answer
}
