package bootstrap

import (
	"log"
	"time"

	"disaster-chatbot-be/internal/config"
	"disaster-chatbot-be/internal/controller"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/internal/repository/implementation"
	"disaster-chatbot-be/internal/repository/memory"
	"disaster-chatbot-be/internal/service"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/embedding"
	"disaster-chatbot-be/pkg/llm/factory"
	"disaster-chatbot-be/pkg/vectorstore"
	"disaster-chatbot-be/pkg/warning"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	ChatController    controller.IChatController
	PlannerController controller.IPlannerController
	WarningController controller.IWarningController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Corpus Pipeline
	builder := corpus.NewBuilder(cfg.Corpus.ChunkSize, cfg.Corpus.ChunkOverlap)
	store := vectorstore.NewStore(cfg.Corpus.VectorRoot, embeddingProvider)
	warningClient := warning.NewClient(cfg.Warning.FeedURL)

	// 5. Repositories
	chatbotRepo := implementation.NewChatbotRepository(db)
	sessionRepo := memory.NewSessionRepository(1 * time.Hour)

	// 6. Services
	answerService := service.NewAnswerService(
		store,
		embeddingProvider,
		llmProvider,
		sysLogger,
		cfg.Ai.TopK,
		cfg.Ai.ScoreThreshold,
	)
	chatService := service.NewChatService(answerService, sessionRepo)
	chatbotService := service.NewChatbotService(chatbotRepo, builder, store, sysLogger)
	eopService := service.NewEOPService(llmProvider, cfg.Ai.LLMModel, sysLogger)
	taskService := service.NewTaskService(llmProvider, sysLogger)
	ingestService := service.NewIngestService(warningClient, pubSub, cfg.Warning.TopicName, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Warning.TopicName, builder, store, sysLogger)

	// 7. Controllers
	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService, cfg.App.UploadTempDir),
		ChatController:    controller.NewChatController(chatService, answerService),
		PlannerController: controller.NewPlannerController(eopService, taskService),
		WarningController: controller.NewWarningController(ingestService),

		ConsumerService: consumerService,
	}
}
