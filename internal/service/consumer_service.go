package service

import (
	"context"
	"encoding/json"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService builds the daily warning corpus from published batches.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub  *gochannel.GoChannel
	topic   string
	builder *corpus.Builder
	store   *vectorstore.Store
	logger  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topic string,
	builder *corpus.Builder,
	store *vectorstore.Store,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:  pubSub,
		topic:   topic,
		builder: builder,
		store:   store,
		logger:  sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WarningCorpusMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal warning batch", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	// Same-day duplicate guard: one warning index per day.
	if cs.store.Exists(payload.TenantID) {
		cs.logger.Warn("consumer", "index already built for this tenant, skipping", map[string]interface{}{
			"tenant_id": payload.TenantID,
		})
		msg.Ack()
		return
	}

	docs := make([]corpus.Document, 0, len(payload.Records))
	for _, r := range payload.Records {
		docs = append(docs, r.Document())
	}

	chunks, err := cs.builder.Build(payload.TenantID, docs)
	if err != nil {
		cs.logger.Error("consumer", "failed to build warning corpus", map[string]interface{}{
			"tenant_id": payload.TenantID, "error": err.Error(),
		})
		msg.Nack()
		return
	}
	if len(chunks) == 0 {
		cs.logger.Warn("consumer", "warning batch produced no chunks", map[string]interface{}{
			"tenant_id": payload.TenantID,
		})
		msg.Ack()
		return
	}

	if _, err := cs.store.Build(ctx, payload.TenantID, chunks); err != nil {
		cs.logger.Error("consumer", "failed to build warning index", map[string]interface{}{
			"tenant_id": payload.TenantID, "error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "warning index built", map[string]interface{}{
		"tenant_id": payload.TenantID, "chunks": len(chunks),
	})
	msg.Ack()
}
