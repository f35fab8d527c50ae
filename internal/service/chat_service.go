package service

import (
	"context"

	"disaster-chatbot-be/internal/constant"
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/repository/memory"
	"disaster-chatbot-be/pkg/llm"
	"disaster-chatbot-be/pkg/store"

	"github.com/google/uuid"
)

// IChatService runs multi-turn conversations over in-memory sessions.
type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	answerService IAnswerService
	sessionRepo   *memory.SessionRepository
}

func NewChatService(answerService IAnswerService, sessionRepo *memory.SessionRepository) IChatService {
	return &chatService{
		answerService: answerService,
		sessionRepo:   sessionRepo,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	session := s.getOrCreateSession(req.SessionId, req.ChatbotId)

	// History excludes the message currently being answered.
	history := make([]llm.Message, 0, len(session.Turns))
	for _, turn := range session.Turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	session.Append(constant.ChatMessageRoleUser, req.Message)

	answer, err := s.answerService.AskWithHistory(ctx, session.TenantID, req.Message, history)
	if err != nil {
		return nil, err
	}

	session.Append(constant.ChatMessageRoleAssistant, answer)
	s.sessionRepo.Save(session)

	return &dto.ChatResponse{
		Message:   answer,
		SessionId: session.ID,
	}, nil
}

// getOrCreateSession lazily creates a session when no valid identifier is
// supplied.
func (s *chatService) getOrCreateSession(sessionID, tenantID string) *store.Session {
	if sessionID != "" {
		if session, found := s.sessionRepo.Get(sessionID); found {
			return session
		}
	}
	return &store.Session{
		ID:       uuid.New().String(),
		TenantID: tenantID,
	}
}
