package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Chatbot struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"size:255;not null"`
	Size         string         `gorm:"size:50;not null"`
	Color        string         `gorm:"size:50;not null"`
	Logo         *string        `gorm:"size:255"`
	Script       *string        `gorm:"type:text"`
	OwnerId      uuid.UUID      `gorm:"type:uuid;index;not null"`
	TrainingMeta datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (Chatbot) TableName() string {
	return "chatbots"
}
