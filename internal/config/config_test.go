package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "LOG_LEVEL", "MAX_RESPONSE_TIME",
		"GOOGLE_API_KEY", "GEMINI_MODEL", "EMBEDDING_MODEL",
		"COURSE_DATA_PATH", "DISCOURSE_DATA_PATH", "VECTOR_DB_PATH",
		"NUM_RETRIEVED_DOCS", "CHUNK_SIZE", "CHUNK_OVERLAP",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %q", cfg.Host)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.MaxResponseTime != 30*time.Second {
		t.Errorf("expected default soft budget 30s, got %v", cfg.MaxResponseTime)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("unexpected default model %q", cfg.GeminiModel)
	}
	if cfg.EmbeddingModel != "text-embedding-004" {
		t.Errorf("unexpected default embedding model %q", cfg.EmbeddingModel)
	}
	if cfg.NumRetrievedDocs != 3 {
		t.Errorf("expected 3 retrieved docs, got %d", cfg.NumRetrievedDocs)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 100 {
		t.Errorf("unexpected chunking defaults: size=%d overlap=%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_RESPONSE_TIME", "5")
	t.Setenv("NUM_RETRIEVED_DOCS", "7")
	t.Setenv("CHUNK_SIZE", "500")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected lowercased log level, got %q", cfg.LogLevel)
	}
	if cfg.MaxResponseTime != 5*time.Second {
		t.Errorf("expected 5s budget, got %v", cfg.MaxResponseTime)
	}
	if cfg.NumRetrievedDocs != 7 {
		t.Errorf("expected 7 retrieved docs, got %d", cfg.NumRetrievedDocs)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("expected chunk size 500, got %d", cfg.ChunkSize)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHUNK_SIZE", "not-a-number")

	cfg := Load()
	if cfg.ChunkSize != 1000 {
		t.Errorf("expected fallback chunk size 1000, got %d", cfg.ChunkSize)
	}
}

func TestValidate_RequiresAPIKey(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing GOOGLE_API_KEY")
	}
	if !strings.Contains(err.Error(), "GOOGLE_API_KEY") {
		t.Errorf("expected error to mention GOOGLE_API_KEY, got %v", err)
	}
}

func TestValidate_OverlapMustBeSmallerThanSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("CHUNK_SIZE", "100")
	t.Setenv("CHUNK_OVERLAP", "100")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when overlap equals chunk size")
	}
}

func TestValidate_OK(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
