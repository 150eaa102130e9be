package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no LLM credential is available. Callers
// must check for it before issuing any network request.
var ErrNotConfigured = errors.New("LLM model not configured")

// TextGenerator is the interface for prompt-in/text-out LLM providers.
// Implement this interface to add new providers (Gemini, Ollama, ...).
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the LLM provider type.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
