package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/apperrors"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/pkg/warning"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// warningTenantPrefix keeps daily warning tenants date-stamped so
// LatestTenantID resolves to the newest corpus.
const warningTenantPrefix = "warnings-"

// WarningTenantID returns the tenant identifier for a given day's feed.
func WarningTenantID(t time.Time) string {
	return warningTenantPrefix + t.Format("20060102")
}

// IIngestService fetches the warning feed and hands batches to the
// corpus-build consumer over the event bus.
type IIngestService interface {
	IngestWarnings(ctx context.Context) (*dto.IngestWarningsResponse, error)
}

type ingestService struct {
	client *warning.Client
	pubSub *gochannel.GoChannel
	topic  string
	logger logger.ILogger
}

func NewIngestService(
	client *warning.Client,
	pubSub *gochannel.GoChannel,
	topic string,
	sysLogger logger.ILogger,
) IIngestService {
	return &ingestService{
		client: client,
		pubSub: pubSub,
		topic:  topic,
		logger: sysLogger,
	}
}

func (s *ingestService) IngestWarnings(ctx context.Context) (*dto.IngestWarningsResponse, error) {
	records, err := s.client.FetchLatest(ctx)
	if err != nil {
		return nil, apperrors.NewRemoteProvider("warning feed", err)
	}
	if len(records) == 0 {
		return &dto.IngestWarningsResponse{Message: "No warnings available"}, nil
	}

	tenantID := WarningTenantID(time.Now())
	payload := dto.WarningCorpusMessage{
		TenantID: tenantID,
		Records:  records,
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadJSON)
	if err := s.pubSub.Publish(s.topic, msg); err != nil {
		return nil, fmt.Errorf("publish warning batch: %w", err)
	}

	s.logger.Info("ingest", "warning batch published", map[string]interface{}{
		"tenant_id": tenantID, "records": len(records),
	})

	return &dto.IngestWarningsResponse{
		Message:  "Warning ingestion started",
		TenantID: tenantID,
		Count:    len(records),
	}, nil
}
