package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatbotRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	Size  string `json:"size" validate:"required,oneof=small medium large"`
	Color string `json:"color" validate:"required,max=50"`
	Logo  string `json:"logo,omitempty" validate:"omitempty,max=255"`
}

type UpdateChatbotRequest struct {
	Id     uuid.UUID `json:"-"`
	Title  *string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Size   *string   `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Color  *string   `json:"color,omitempty" validate:"omitempty,max=50"`
	Logo   *string   `json:"logo,omitempty" validate:"omitempty,max=255"`
	Script *string   `json:"script,omitempty"`
}

type ChatbotResponse struct {
	Id            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Size          string        `json:"size"`
	Color         string        `json:"color"`
	Logo          string        `json:"logo,omitempty"`
	Script        string        `json:"script,omitempty"`
	OwnerId       uuid.UUID     `json:"owner_id"`
	TrainingMeta  *TrainingMeta `json:"training_meta,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

type ChatbotsResponse struct {
	Data  []*ChatbotResponse `json:"data"`
	Count int                `json:"count"`
}

// TrainingMeta records the last corpus build for a chatbot.
type TrainingMeta struct {
	FileCount  int       `json:"file_count"`
	ChunkCount int       `json:"chunk_count"`
	TrainedAt  time.Time `json:"trained_at"`
}

// UploadedFile is a file already persisted to a temporary path by the HTTP
// layer, with its inferred corpus kind.
type UploadedFile struct {
	Path string
	Kind string // "csv" | "pdf" | "text"
}

type MessageResponse struct {
	Message string `json:"message"`
}
