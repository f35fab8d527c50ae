package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chatbot is one tenant: a chatbot record plus its isolated corpus index,
// keyed by the chatbot id.
type Chatbot struct {
	Id      uuid.UUID
	Title   string
	Size    string // small, medium, large
	Color   string // primary color hex code
	Logo    *string
	Script  *string // link to exported chatbot script
	OwnerId uuid.UUID

	TrainingMeta *TrainingMeta

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TrainingMeta describes the last corpus build.
type TrainingMeta struct {
	FileCount  int       `json:"file_count"`
	ChunkCount int       `json:"chunk_count"`
	TrainedAt  time.Time `json:"trained_at"`
}
