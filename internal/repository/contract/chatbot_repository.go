package contract

import (
	"context"

	"disaster-chatbot-be/internal/entity"

	"github.com/google/uuid"
)

type ChatbotRepository interface {
	Create(ctx context.Context, chatbot *entity.Chatbot) error
	Update(ctx context.Context, chatbot *entity.Chatbot) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOne returns nil, nil when no record matches.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Chatbot, error)
	FindAllByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*entity.Chatbot, error)
}
