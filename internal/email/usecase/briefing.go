package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
	"github.com/gregschwartz/jobseeker-analytics/pkg/ai"
	"github.com/gregschwartz/jobseeker-analytics/pkg/llmjson"
	"github.com/gregschwartz/jobseeker-analytics/pkg/retry"
)

// BriefingGenerator produces a structured interview-preparation document
// for a company, optionally grounded with scraped background material.
type BriefingGenerator struct {
	llm        ai.TextGenerator
	enrichment *EnrichmentProvider
	policy     retry.Policy
	log        zerolog.Logger
}

func NewBriefingGenerator(llm ai.TextGenerator, enrichment *EnrichmentProvider, log zerolog.Logger) *BriefingGenerator {
	return &BriefingGenerator{
		llm:        llm,
		enrichment: enrichment,
		log:        log.With().Str("component", "briefing").Logger(),
	}
}

// Generate builds the briefing for req. On failure it returns a
// BriefingError describing what went wrong; exactly one of the two return
// values is non-nil.
func (g *BriefingGenerator) Generate(ctx context.Context, req emaildomain.BriefingRequest) (*emaildomain.BriefingDocument, *emaildomain.BriefingError) {
	if g.llm == nil {
		return nil, g.fail(req.CompanyName, ai.ErrNotConfigured, "")
	}

	prompt := g.buildPrompt(ctx, req)

	var doc emaildomain.BriefingDocument
	var lastRaw string
	err := retry.Do(ctx, g.log, "briefing "+req.CompanyName, g.policy, func() error {
		text, err := g.llm.Generate(ctx, prompt)
		if err != nil {
			return err
		}
		lastRaw = text
		var parsed emaildomain.BriefingDocument
		if err := llmjson.Unmarshal(text, &parsed); err != nil {
			return err
		}
		doc = parsed
		return nil
	})
	if err != nil {
		return nil, g.fail(req.CompanyName, err, lastRaw)
	}

	g.log.Info().Str("company", req.CompanyName).Msg("interview briefing generated")
	return &doc, nil
}

func (g *BriefingGenerator) buildPrompt(ctx context.Context, req emaildomain.BriefingRequest) string {
	companyBackground := ""
	newsBackground := ""
	interviewerBlock := noInterviewersFallback
	if g.enrichment != nil {
		companyBackground = g.enrichment.CompanySummary(ctx, req.CompanyName)
		newsBackground = g.enrichment.RecentNews(req.CompanyName)
		interviewerBlock = g.enrichment.InterviewerBlock(ctx, req.InterviewerNames, req.CompanyName)
	}

	var b strings.Builder
	b.WriteString("You are preparing a candidate for a job interview at " + req.CompanyName + ".\n\n")
	if companyBackground != "" {
		b.WriteString("Verified company background:\n" + companyBackground + "\n\n")
	}
	if newsBackground != "" {
		b.WriteString("Recent news context:\n" + newsBackground + "\n\n")
	}
	b.WriteString("Interviewer background:\n" + interviewerBlock + "\n\n")
	b.WriteString(`Produce an interview briefing as a single JSON object with exactly these keys:
"company_info": an object with keys "description", "mission", "values" (array of strings), "recent_news" (array of strings)
"company_talking_points": an array of strings with specific points the candidate can raise
"interviewers": an array of objects, each with keys "name", "info", "talking_points" (array of strings); omit the array if no interviewer background is available

Ground every claim in the background above when it is present. Only use double quotes. Do not wrap the JSON in backticks or markdown.`)
	return b.String()
}

// fail converts an internal error into the user-facing BriefingError stored
// alongside the email.
func (g *BriefingGenerator) fail(companyName string, err error, raw string) *emaildomain.BriefingError {
	g.log.Error().Err(err).Str("company", companyName).Msg("briefing generation failed")

	be := &emaildomain.BriefingError{CompanyName: companyName}
	var exhausted *retry.ExhaustedError
	var malformed *llmjson.MalformedError
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		be.Error = "LLM model not configured"
	case errors.Is(err, llmjson.ErrEmptyResponse):
		be.Error = "Empty response from LLM"
	case errors.As(err, &exhausted) && errors.As(err, &malformed):
		be.Error = fmt.Sprintf("Failed to parse LLM response after %d attempts", exhausted.Attempts)
		be.RawResponse = malformed.Raw
	case errors.As(err, &exhausted):
		be.Error = fmt.Sprintf("Failed to generate interview briefing after %d attempts", exhausted.Attempts)
		if raw != "" {
			be.RawResponse = raw
		}
	default:
		be.Error = "An unexpected error occurred: " + err.Error()
	}
	return be
}
