// Package apify is a thin client for running Apify scraping actors
// synchronously and collecting their dataset items.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.apify.com"

// Client calls the Apify actor API with a fixed account token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates an actor client. The token is required; callers decide
// whether to construct a client at all when no credential is configured.
func NewClient(token string, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 5 * time.Minute},
		log:     log.With().Str("component", "apify").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunActor runs the named actor synchronously and returns its dataset
// items. Actor IDs use the marketplace "owner/name" form; the API path
// wants "owner~name".
func (c *Client) RunActor(ctx context.Context, actorID string, input any) ([]map[string]any, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal actor input: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL,
		strings.ReplaceAll(actorID, "/", "~"),
		url.QueryEscape(c.token),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("actor", actorID).Msg("running actor")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("actor request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("apify API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var items []map[string]any
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, fmt.Errorf("failed to parse dataset items: %w", err)
	}

	c.log.Debug().Str("actor", actorID).Int("items", len(items)).Msg("actor run finished")
	return items, nil
}
