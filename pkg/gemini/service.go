// Package gemini adapts the Google Gemini API to the ai.TextGenerator
// interface. Rate-limit failures are classified here, at the transport
// boundary, so retry policy never depends on parsing error strings.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/gregschwartz/jobseeker-analytics/pkg/retry"
)

// DefaultModel mirrors the model the original analytics pipeline ran on.
const DefaultModel = "gemini-2.0-flash-lite"

type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API base URL. Useful for proxies/testing.
	BaseURL string

	// RequestsPerSecond throttles outgoing calls. Set to <=0 to disable.
	RequestsPerSecond float64
}

type Service struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewService creates a Gemini-backed text generator.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required for Gemini provider")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSpace(cfg.BaseURL)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}

	svc := &Service{client: client, model: model}
	if cfg.RequestsPerSecond > 0 {
		svc.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return svc, nil
}

// Generate implements ai.TextGenerator.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	resp, err := s.client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{CandidateCount: 1},
	)
	if err != nil {
		return "", classifyErr(err)
	}

	return resp.Text(), nil
}

// classifyErr wraps quota failures in *retry.RateLimitError so the retry
// controller backs off instead of giving up.
func classifyErr(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || strings.Contains(apiErr.Message, "Resource has been exhausted") {
			return &retry.RateLimitError{Err: err}
		}
	}
	return err
}
