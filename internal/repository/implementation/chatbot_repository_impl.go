package implementation

import (
	"context"
	"errors"

	"disaster-chatbot-be/internal/entity"
	"disaster-chatbot-be/internal/mapper"
	"disaster-chatbot-be/internal/model"
	"disaster-chatbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatbotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatbotMapper
}

func NewChatbotRepository(db *gorm.DB) contract.ChatbotRepository {
	return &ChatbotRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatbotMapper(),
	}
}

func (r *ChatbotRepositoryImpl) Create(ctx context.Context, chatbot *entity.Chatbot) error {
	m := r.mapper.ToModel(chatbot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chatbot = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatbotRepositoryImpl) Update(ctx context.Context, chatbot *entity.Chatbot) error {
	m := r.mapper.ToModel(chatbot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*chatbot = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatbotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Chatbot{}, id).Error
}

func (r *ChatbotRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.Chatbot, error) {
	var m model.Chatbot
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChatbotRepositoryImpl) FindAllByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*entity.Chatbot, error) {
	var models []*model.Chatbot
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	chatbots := make([]*entity.Chatbot, 0, len(models))
	for _, m := range models {
		chatbots = append(chatbots, r.mapper.ToEntity(m))
	}
	return chatbots, nil
}
