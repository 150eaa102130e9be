package ai

import (
	"context"

	"github.com/rs/zerolog"
)

// FallbackGenerator routes prompts to a primary provider and falls back to a
// secondary one when the primary fails outright. It is wired only when both
// Gemini and Ollama are configured; retry/backoff for transient failures
// stays the caller's job.
type FallbackGenerator struct {
	primary   TextGenerator
	secondary TextGenerator
	log       zerolog.Logger
}

// NewFallbackGenerator creates a fallback generator with both providers.
func NewFallbackGenerator(primary, secondary TextGenerator, log zerolog.Logger) *FallbackGenerator {
	return &FallbackGenerator{
		primary:   primary,
		secondary: secondary,
		log:       log.With().Str("component", "ai_fallback").Logger(),
	}
}

// Generate implements TextGenerator.
func (f *FallbackGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := f.primary.Generate(ctx, prompt)
	if err == nil {
		return text, nil
	}

	f.log.Warn().Err(err).Msg("primary LLM provider failed, trying fallback")

	text, ferr := f.secondary.Generate(ctx, prompt)
	if ferr != nil {
		// Surface the primary failure; it carries the transport
		// classification the retry policy understands.
		return "", err
	}
	return text, nil
}
