package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gregschwartz/jobseeker-analytics/pkg/ai"
	"github.com/gregschwartz/jobseeker-analytics/pkg/apify"
)

const (
	companyScraperActor    = "pocesar/linkedin-company-scraper"
	profileSearchActor     = "harvestapi/linkedin-profile-search"
	companySummaryMaxLen   = 500
	profileSummaryMaxLen   = 300
	simulatedNewsNote      = "(Simulated) Search for major news updates about the company in the last six months. Provide 2-3 example news headlines."
	noInterviewersFallback = "No interviewer names provided or LinkedIn search skipped."
	interviewerPlaceholder = "(Simulated) Attempt to find their LinkedIn profile or general professional information. Provide a brief example summary of their role and experience."
)

// EnrichmentProvider pulls public company and interviewer background used
// to ground the briefing prompt. The Apify client is nil when no API key
// is configured; all lookups then degrade to their fallback text.
type EnrichmentProvider struct {
	client *apify.Client
	llm    ai.TextGenerator
	log    zerolog.Logger
}

func NewEnrichmentProvider(client *apify.Client, llm ai.TextGenerator, log zerolog.Logger) *EnrichmentProvider {
	return &EnrichmentProvider{
		client: client,
		llm:    llm,
		log:    log.With().Str("component", "enrichment").Logger(),
	}
}

// Enabled reports whether scraping is configured at all.
func (p *EnrichmentProvider) Enabled() bool {
	return p.client != nil
}

// CompanySummary scrapes the company's LinkedIn page and condenses it to a
// short factual block. Returns "" when the company cannot be found or the
// scrape fails; the briefing falls back to the LLM's own knowledge.
func (p *EnrichmentProvider) CompanySummary(ctx context.Context, companyName string) string {
	if p.client == nil {
		return ""
	}

	linkedinURL := p.companyURL(ctx, companyName)
	if linkedinURL == "" {
		return ""
	}

	items, err := p.client.RunActor(ctx, companyScraperActor, map[string]any{
		"linkedin_urls":       []string{linkedinURL},
		"max_pages_to_scrape": 1,
	})
	if err != nil {
		p.log.Warn().Err(err).Str("company", companyName).Msg("company scrape failed")
		return ""
	}
	if len(items) == 0 {
		return ""
	}

	item := items[0]
	var parts []string
	if desc := stringField(item, "description"); desc != "" {
		parts = append(parts, "Description: "+truncate(desc, companySummaryMaxLen))
	}
	if industry := stringField(item, "industry"); industry != "" {
		parts = append(parts, "Industry: "+industry)
	}
	if size := stringField(item, "company_size"); size != "" {
		parts = append(parts, "Company size: "+size)
	}
	if hq, ok := item["headquarters"].(map[string]any); ok {
		if city := stringField(hq, "city"); city != "" {
			parts = append(parts, "Headquarters: "+city)
		}
	}
	if website := stringField(item, "website"); website != "" {
		parts = append(parts, "Website: "+website)
	}
	return strings.Join(parts, "\n")
}

// companyURL asks the LLM for the company's LinkedIn page URL. A single
// attempt only; discovery failures are not worth a retry budget.
func (p *EnrichmentProvider) companyURL(ctx context.Context, companyName string) string {
	if p.llm == nil {
		return ""
	}
	prompt := "What is the LinkedIn company page URL for the company named \"" + companyName + "\"? " +
		"Respond with only the URL and nothing else. If you do not know, respond with exactly NOT_FOUND."
	text, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		p.log.Warn().Err(err).Str("company", companyName).Msg("company URL lookup failed")
		return ""
	}
	url := strings.TrimSpace(text)
	if url == "" || strings.Contains(url, "NOT_FOUND") || !strings.HasPrefix(url, "http") {
		return ""
	}
	return url
}

// InterviewerSummary searches for a single interviewer's public profile and
// condenses it. Returns "" when nothing useful comes back.
func (p *EnrichmentProvider) InterviewerSummary(ctx context.Context, name, companyName string) string {
	if p.client == nil {
		return ""
	}

	items, err := p.client.RunActor(ctx, profileSearchActor, map[string]any{
		"search_queries":       []string{name + " " + companyName},
		"max_items":            1,
		"profile_scraper_mode": "full",
	})
	if err != nil {
		p.log.Warn().Err(err).Str("interviewer", name).Msg("profile search failed")
		return ""
	}
	if len(items) == 0 {
		return ""
	}

	item := items[0]
	var parts []string
	if profileURL := stringField(item, "profile_url"); profileURL != "" {
		parts = append(parts, "Profile: "+profileURL)
	}
	if headline := stringField(item, "headline"); headline != "" {
		parts = append(parts, "Headline: "+headline)
	}
	if summary := stringField(item, "summary"); summary != "" {
		parts = append(parts, "Summary: "+truncate(summary, profileSummaryMaxLen))
	}
	if exp := experienceLines(item); exp != "" {
		parts = append(parts, "Experience: "+exp)
	}
	return strings.Join(parts, "\n")
}

// InterviewerBlock builds the per-interviewer background section for the
// briefing prompt. A failed or skipped lookup degrades to a simulated
// placeholder for that interviewer only.
func (p *EnrichmentProvider) InterviewerBlock(ctx context.Context, names []string, companyName string) string {
	if len(names) == 0 {
		return noInterviewersFallback
	}
	var blocks []string
	for _, name := range names {
		summary := ""
		if p.client != nil {
			summary = p.InterviewerSummary(ctx, name, companyName)
		}
		if summary == "" {
			summary = interviewerPlaceholder
		}
		blocks = append(blocks, fmt.Sprintf("Interviewer: %s\n%s", name, summary))
	}
	return strings.Join(blocks, "\n\n")
}

// RecentNews is a placeholder until a real news source is wired in.
func (p *EnrichmentProvider) RecentNews(companyName string) string {
	return simulatedNewsNote
}

func experienceLines(item map[string]any) string {
	raw, ok := item["experience"].([]any)
	if !ok {
		return ""
	}
	if len(raw) > 2 {
		raw = raw[:2]
	}
	var lines []string
	for _, e := range raw {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		title := stringField(entry, "title")
		company := stringField(entry, "company_name")
		if title == "" && company == "" {
			continue
		}
		from := stringField(entry, "date_from")
		to := stringField(entry, "date_to")
		if to == "" {
			to = "Present"
		}
		lines = append(lines, fmt.Sprintf("%s at %s (%s - %s)", title, company, from, to))
	}
	return strings.Join(lines, "; ")
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
