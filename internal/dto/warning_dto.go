package dto

import "disaster-chatbot-be/pkg/warning"

// WarningCorpusMessage is the pub/sub payload carrying one fetched warning
// batch to the corpus-build consumer.
type WarningCorpusMessage struct {
	TenantID string           `json:"tenant_id"`
	Records  []warning.Record `json:"records"`
}

type IngestWarningsResponse struct {
	Message  string `json:"message"`
	TenantID string `json:"tenant_id"`
	Count    int    `json:"count"`
}
