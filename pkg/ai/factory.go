package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gregschwartz/jobseeker-analytics/pkg/gemini"
)

// Config holds LLM provider configuration.
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey      string
	GeminiModel       string
	RequestsPerSecond float64

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewTextGenerator creates a TextGenerator based on the config.
// This is the factory function - switch LLM provider by changing
// config.Provider. Returns ErrNotConfigured when no provider can be built,
// so callers can run in degraded mode instead of crashing.
func NewTextGenerator(ctx context.Context, cfg Config, log zerolog.Logger) (TextGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GOOGLE_API_KEY is missing", ErrNotConfigured)
		}
		return gemini.NewService(ctx, gemini.Config{
			APIKey:            cfg.GeminiAPIKey,
			Model:             cfg.GeminiModel,
			RequestsPerSecond: cfg.RequestsPerSecond,
		})

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Default to Gemini if an API key is available, with Ollama as a
		// fallback when both are configured; otherwise Ollama alone when a
		// base URL was set explicitly.
		if cfg.GeminiAPIKey != "" {
			svc, err := gemini.NewService(ctx, gemini.Config{
				APIKey:            cfg.GeminiAPIKey,
				Model:             cfg.GeminiModel,
				RequestsPerSecond: cfg.RequestsPerSecond,
			})
			if err != nil {
				return nil, err
			}
			if cfg.OllamaBaseURL != "" {
				return NewFallbackGenerator(svc, NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), log), nil
			}
			return svc, nil
		}
		if cfg.OllamaBaseURL != "" {
			return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
		}
		return nil, ErrNotConfigured
	}
}
