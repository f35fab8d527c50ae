package main

import (
	"context"
	"os"
	"time"

	"disaster-chatbot-be/internal/config"
	"disaster-chatbot-be/internal/service"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/embedding"
	"disaster-chatbot-be/pkg/vectorstore"
	"disaster-chatbot-be/pkg/warning"

	"github.com/fatih/color"
)

// crawl fetches the latest warning feed and builds the daily warning
// corpus synchronously, bypassing the event bus. Useful from cron or
// for seeding a fresh deployment.
func main() {
	cfg := config.Load()

	color.Cyan("🚀 Crawling warning feed: %s", cfg.Warning.FeedURL)

	client := warning.NewClient(cfg.Warning.FeedURL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	records, err := client.FetchLatest(ctx)
	if err != nil {
		color.Red("Failed to fetch warning feed: %v", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		color.Yellow("Feed returned no warnings, nothing to build")
		return
	}
	color.Green("Fetched %d warnings", len(records))

	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
	}

	builder := corpus.NewBuilder(cfg.Corpus.ChunkSize, cfg.Corpus.ChunkOverlap)
	store := vectorstore.NewStore(cfg.Corpus.VectorRoot, embeddingProvider)

	tenantID := service.WarningTenantID(time.Now())

	docs := make([]corpus.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.Document())
	}

	chunks, err := builder.Build(tenantID, docs)
	if err != nil {
		color.Red("Failed to build corpus: %v", err)
		os.Exit(1)
	}

	color.Cyan("Embedding %d chunks into tenant %q", len(chunks), tenantID)
	if _, err := store.Build(ctx, tenantID, chunks); err != nil {
		color.Red("Failed to build index: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Warning index %q built successfully", tenantID)
}
