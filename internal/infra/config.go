package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	// Assistant provider (scenario authoring).
	OpenAIAPIKey      string
	OpenAIAssistantID string
	OpenAIBaseURL     string

	// Image provider.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Optional metadata datastore. Empty disables persistence entirely.
	DatabaseURL string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Provider credentials are intentionally not required
// here: their absence is surfaced as a configuration error by the endpoint
// that needs them, so a partially configured process can still serve the rest.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIAssistantID:  os.Getenv("OPENAI_ASSISTANT_ID"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:       os.Getenv("GOOGLE_GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash-image-preview"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	return cfg, nil
}

// HasAssistant reports whether the assistant provider is fully configured.
func (c *Config) HasAssistant() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIAssistantID != ""
}

// HasImageProvider reports whether the image provider is configured.
func (c *Config) HasImageProvider() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
