package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	ServerPort         string
	FrontendURL        string
	OpenAIKey          string
	TextModel          string
	StructuredModel    string
	FirestoreProjectID string
	PineconeAPIKey     string
	RateLimit          string
	EnableHSTS         bool
	ServerDebugMode    bool
	OTELEnabled        bool
	OTELEndpoint       string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
		TextModel:          getEnv("LLM_TEXT_MODEL", ""),
		StructuredModel:    getEnv("LLM_STRUCTURED_MODEL", ""),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		PineconeAPIKey:     getEnv("PINECONE_API_KEY", ""),
		RateLimit:          getEnv("RATE_LIMIT", "5-S"),
		EnableHSTS:         getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode:    getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:        getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	if cfg.FirestoreProjectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
