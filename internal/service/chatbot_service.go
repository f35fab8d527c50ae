package service

import (
	"context"
	"time"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/entity"
	"disaster-chatbot-be/internal/pkg/apperrors"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/internal/repository/contract"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/vectorstore"

	"github.com/google/uuid"
)

// IChatbotService owns the chatbot record lifecycle and its corpus index.
type IChatbotService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateChatbotRequest) (*dto.ChatbotResponse, error)
	GetAllByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) (*dto.ChatbotsResponse, error)
	Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ChatbotResponse, error)
	Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdateChatbotRequest) (*dto.ChatbotResponse, error)
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
	Train(ctx context.Context, ownerId, id uuid.UUID, files []dto.UploadedFile) (*dto.MessageResponse, error)
}

type chatbotService struct {
	chatbotRepo contract.ChatbotRepository
	builder     *corpus.Builder
	store       *vectorstore.Store
	logger      logger.ILogger
}

func NewChatbotService(
	chatbotRepo contract.ChatbotRepository,
	builder *corpus.Builder,
	store *vectorstore.Store,
	sysLogger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		chatbotRepo: chatbotRepo,
		builder:     builder,
		store:       store,
		logger:      sysLogger,
	}
}

func (s *chatbotService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateChatbotRequest) (*dto.ChatbotResponse, error) {
	chatbot := entity.Chatbot{
		Id:        uuid.New(),
		Title:     req.Title,
		Size:      req.Size,
		Color:     req.Color,
		OwnerId:   ownerId,
		CreatedAt: time.Now(),
	}
	if req.Logo != "" {
		chatbot.Logo = &req.Logo
	}

	if err := s.chatbotRepo.Create(ctx, &chatbot); err != nil {
		return nil, err
	}
	return toChatbotResponse(&chatbot), nil
}

func (s *chatbotService) GetAllByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) (*dto.ChatbotsResponse, error) {
	chatbots, err := s.chatbotRepo.FindAllByOwner(ctx, ownerId, offset, limit)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.ChatbotResponse, 0, len(chatbots))
	for _, cb := range chatbots {
		data = append(data, toChatbotResponse(cb))
	}
	return &dto.ChatbotsResponse{Data: data, Count: len(data)}, nil
}

func (s *chatbotService) Show(ctx context.Context, ownerId, id uuid.UUID) (*dto.ChatbotResponse, error) {
	chatbot, err := s.findOwned(ctx, ownerId, id)
	if err != nil {
		return nil, err
	}
	return toChatbotResponse(chatbot), nil
}

func (s *chatbotService) Update(ctx context.Context, ownerId uuid.UUID, req *dto.UpdateChatbotRequest) (*dto.ChatbotResponse, error) {
	chatbot, err := s.findOwned(ctx, ownerId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		chatbot.Title = *req.Title
	}
	if req.Size != nil {
		chatbot.Size = *req.Size
	}
	if req.Color != nil {
		chatbot.Color = *req.Color
	}
	if req.Logo != nil {
		chatbot.Logo = req.Logo
	}
	if req.Script != nil {
		chatbot.Script = req.Script
	}
	now := time.Now()
	chatbot.UpdatedAt = &now

	if err := s.chatbotRepo.Update(ctx, chatbot); err != nil {
		return nil, err
	}
	return toChatbotResponse(chatbot), nil
}

// Delete removes the record and its index; a missing index is ignored.
func (s *chatbotService) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	chatbot, err := s.findOwned(ctx, ownerId, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(chatbot.Id.String()); err != nil {
		s.logger.Warn("chatbot", "failed to delete vector index", map[string]interface{}{
			"chatbot_id": chatbot.Id, "error": err.Error(),
		})
	}

	return s.chatbotRepo.Delete(ctx, chatbot.Id)
}

// Train builds the chatbot's corpus index from uploaded files. The kind of
// each file has been inferred by the HTTP layer (csv / pdf / text).
func (s *chatbotService) Train(ctx context.Context, ownerId, id uuid.UUID, files []dto.UploadedFile) (*dto.MessageResponse, error) {
	chatbot, err := s.findOwned(ctx, ownerId, id)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperrors.NewValidation("at least one training file is required")
	}

	docs := make([]corpus.Document, 0, len(files))
	for _, f := range files {
		docs = append(docs, corpus.Document{Source: f.Path, Kind: corpus.Kind(f.Kind)})
	}

	tenantID := chatbot.Id.String()
	chunks, err := s.builder.Build(tenantID, docs)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, apperrors.NewValidation("training files contain no usable text")
	}

	if _, err := s.store.Build(ctx, tenantID, chunks); err != nil {
		return nil, apperrors.NewRemoteProvider("build index", err)
	}

	chatbot.TrainingMeta = &entity.TrainingMeta{
		FileCount:  len(files),
		ChunkCount: len(chunks),
		TrainedAt:  time.Now(),
	}
	if err := s.chatbotRepo.Update(ctx, chatbot); err != nil {
		s.logger.Warn("chatbot", "failed to store training metadata", map[string]interface{}{
			"chatbot_id": chatbot.Id, "error": err.Error(),
		})
	}

	s.logger.Info("chatbot", "training completed", map[string]interface{}{
		"chatbot_id": chatbot.Id, "files": len(files), "chunks": len(chunks),
	})

	return &dto.MessageResponse{Message: "Training completed successfully"}, nil
}

func (s *chatbotService) findOwned(ctx context.Context, ownerId, id uuid.UUID) (*entity.Chatbot, error) {
	chatbot, err := s.chatbotRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if chatbot == nil {
		return nil, apperrors.NewNotFound("chatbot")
	}
	if chatbot.OwnerId != ownerId {
		return nil, apperrors.NewValidation("not enough permissions")
	}
	return chatbot, nil
}

func toChatbotResponse(cb *entity.Chatbot) *dto.ChatbotResponse {
	res := &dto.ChatbotResponse{
		Id:        cb.Id,
		Title:     cb.Title,
		Size:      cb.Size,
		Color:     cb.Color,
		OwnerId:   cb.OwnerId,
		CreatedAt: cb.CreatedAt,
		UpdatedAt: cb.UpdatedAt,
	}
	if cb.Logo != nil {
		res.Logo = *cb.Logo
	}
	if cb.Script != nil {
		res.Script = *cb.Script
	}
	if cb.TrainingMeta != nil {
		res.TrainingMeta = &dto.TrainingMeta{
			FileCount:  cb.TrainingMeta.FileCount,
			ChunkCount: cb.TrainingMeta.ChunkCount,
			TrainedAt:  cb.TrainingMeta.TrainedAt,
		}
	}
	return res
}
