package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"disaster-chatbot-be/internal/constant"
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/apperrors"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/pkg/llm"
)

// IEOPService generates Emergency Operations Plans from situational input.
type IEOPService interface {
	// GenerateEOP returns an error only for invalid input; remote failures
	// are converted into a status-tagged response.
	GenerateEOP(ctx context.Context, floodData, resourceData, location string) (*dto.EOPGenerationResponse, error)
}

type eopService struct {
	llmProvider llm.LLMProvider
	modelName   string
	logger      logger.ILogger
}

func NewEOPService(llmProvider llm.LLMProvider, modelName string, sysLogger logger.ILogger) IEOPService {
	return &eopService{
		llmProvider: llmProvider,
		modelName:   modelName,
		logger:      sysLogger,
	}
}

func (s *eopService) GenerateEOP(ctx context.Context, floodData, resourceData, location string) (*dto.EOPGenerationResponse, error) {
	if strings.TrimSpace(floodData) == "" {
		return nil, apperrors.NewValidation("flood data is required")
	}
	if strings.TrimSpace(resourceData) == "" {
		return nil, apperrors.NewValidation("resource data is required")
	}
	if strings.TrimSpace(location) == "" {
		return nil, apperrors.NewValidation("location is required")
	}

	prompt := fmt.Sprintf(constant.EOPPromptTemplateV1, floodData, resourceData, location)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Error("eop", "generation call failed", map[string]interface{}{"error": err.Error()})
		return &dto.EOPGenerationResponse{
			Status:  dto.StatusError,
			Message: fmt.Sprintf("Failed to generate EOP: %v", err),
		}, nil
	}

	return &dto.EOPGenerationResponse{
		Status:    dto.StatusSuccess,
		EOPReport: stripEOPTags(raw),
		Metadata: &dto.EOPMetadata{
			Location:    location,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			ModelUsed:   s.modelName,
		},
	}, nil
}

// stripEOPTags removes only the outer document delimiters; section headers
// pass through unmodified.
func stripEOPTags(content string) string {
	content = strings.ReplaceAll(content, "<EOP>", "")
	content = strings.ReplaceAll(content, "</EOP>", "")
	return strings.TrimSpace(content)
}
