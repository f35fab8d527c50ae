package mapper

import (
	"encoding/json"

	"disaster-chatbot-be/internal/entity"
	"disaster-chatbot-be/internal/model"
)

type ChatbotMapper struct{}

func NewChatbotMapper() *ChatbotMapper {
	return &ChatbotMapper{}
}

func (m *ChatbotMapper) ToModel(e *entity.Chatbot) *model.Chatbot {
	cb := &model.Chatbot{
		Id:        e.Id,
		Title:     e.Title,
		Size:      e.Size,
		Color:     e.Color,
		Logo:      e.Logo,
		Script:    e.Script,
		OwnerId:   e.OwnerId,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.TrainingMeta != nil {
		// Marshal of a plain struct cannot fail
		raw, _ := json.Marshal(e.TrainingMeta)
		cb.TrainingMeta = raw
	}
	return cb
}

func (m *ChatbotMapper) ToEntity(cb *model.Chatbot) *entity.Chatbot {
	e := &entity.Chatbot{
		Id:        cb.Id,
		Title:     cb.Title,
		Size:      cb.Size,
		Color:     cb.Color,
		Logo:      cb.Logo,
		Script:    cb.Script,
		OwnerId:   cb.OwnerId,
		CreatedAt: cb.CreatedAt,
		UpdatedAt: cb.UpdatedAt,
	}
	if len(cb.TrainingMeta) > 0 {
		var meta entity.TrainingMeta
		if err := json.Unmarshal(cb.TrainingMeta, &meta); err == nil {
			e.TrainingMeta = &meta
		}
	}
	return e
}
