package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// Config carries everything the service needs, resolved once at startup.
// Handlers never read the environment directly.
type Config struct {
	// Gemini extraction
	GeminiAPIKey string
	GeminiModel  string

	// Google Custom Search
	SearchAPIKey   string
	SearchEngineID string

	// Auth
	GoogleClientID string
	AllowedEmail   string
	SessionSecret  string

	Port string
}

var requiredKeys = []string{
	"GEMINI_API_KEY",
	"GEMINI_MODEL",
	"GOOGLE_SEARCH_API_KEY",
	"GOOGLE_SEARCH_CX",
	"GOOGLE_CLIENT_ID",
	"ALLOWED_EMAIL",
	"SESSION_SECRET",
}

// Load reads the environment and fails with every missing key at once
// instead of discovering them one request at a time.
func Load() (*Config, error) {
	var missing []string
	for _, k := range requiredKeys {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(
			"missing required environment variables: %s",
			strings.Join(missing, ", "),
		)
	}

	cfg := &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		SearchAPIKey:   os.Getenv("GOOGLE_SEARCH_API_KEY"),
		SearchEngineID: os.Getenv("GOOGLE_SEARCH_CX"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		AllowedEmail:   strings.ToLower(strings.TrimSpace(os.Getenv("ALLOWED_EMAIL"))),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		Port:           os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	if err := security.ValidateAPIKey(cfg.GeminiAPIKey); err != nil {
		return nil, fmt.Errorf("GEMINI_API_KEY: %w", err)
	}
	if err := security.ValidateAPIKey(cfg.SearchAPIKey); err != nil {
		return nil, fmt.Errorf("GOOGLE_SEARCH_API_KEY: %w", err)
	}

	return cfg, nil
}
