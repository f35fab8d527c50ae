package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Corpus   CorpusConfig
	Warning  WarningConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadTempDir      string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	EmbeddingProvider    string // "openai" or "ollama"
	EmbeddingModel       string
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	LLMProvider          string // "openai" or "ollama"
	LLMModel             string
	TopK                 int
	// ScoreThreshold gates retrieval results when > 0. Disabled (0) in the
	// primary path on purpose; see DESIGN.md.
	ScoreThreshold float64
}

type CorpusConfig struct {
	VectorRoot   string
	ChunkSize    int
	ChunkOverlap int
}

type WarningConfig struct {
	FeedURL   string
	TopicName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UploadTempDir:      getEnv("UPLOAD_TEMP_DIR", "temp"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:       getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:          getEnv("LLM_PROVIDER", "openai"),
			LLMModel:             getEnv("LLM_MODEL", "gpt-4o-mini"),
			TopK:                 getEnvAsInt("RETRIEVAL_TOP_K", 5),
			ScoreThreshold:       getEnvAsFloat("RETRIEVAL_SCORE_THRESHOLD", 0),
		},
		Corpus: CorpusConfig{
			VectorRoot:   getEnv("VECTOR_DB_ROOT", "data/vector_dbs"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 200),
		},
		Warning: WarningConfig{
			FeedURL:   getEnv("WARNING_FEED_URL", ""),
			TopicName: getEnv("WARNING_CORPUS_TOPIC_NAME", "WARNING_CORPUS_INGEST"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
