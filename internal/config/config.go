package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host     string
	Port     string
	LogLevel string

	// Soft response-time budget. Overruns are logged, never cancelled.
	MaxResponseTime time.Duration

	// Gemini
	GoogleAPIKey   string
	GeminiModel    string
	EmbeddingModel string

	// Data paths
	CourseDataPath    string
	DiscourseDataPath string
	VectorDBPath      string

	// Retrieval
	NumRetrievedDocs int
	ChunkSize        int
	ChunkOverlap     int
}

func Load() Config {
	return Config{
		Host:     envOr("HOST", "0.0.0.0"),
		Port:     envOr("PORT", "8000"),
		LogLevel: strings.ToLower(envOr("LOG_LEVEL", "info")),

		MaxResponseTime: time.Duration(envInt("MAX_RESPONSE_TIME", 30)) * time.Second,

		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:    envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		EmbeddingModel: envOr("EMBEDDING_MODEL", "text-embedding-004"),

		CourseDataPath:    envOr("COURSE_DATA_PATH", "./data/course_content"),
		DiscourseDataPath: envOr("DISCOURSE_DATA_PATH", "./data/discourse_posts"),
		VectorDBPath:      envOr("VECTOR_DB_PATH", "./data/vector_store"),

		NumRetrievedDocs: envInt("NUM_RETRIEVED_DOCS", 3),
		ChunkSize:        envInt("CHUNK_SIZE", 1000),
		ChunkOverlap:     envInt("CHUNK_OVERLAP", 100),
	}
}

func (c Config) Validate() error {
	if c.GoogleAPIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.NumRetrievedDocs <= 0 {
		return fmt.Errorf("NUM_RETRIEVED_DOCS must be positive, got %d", c.NumRetrievedDocs)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
