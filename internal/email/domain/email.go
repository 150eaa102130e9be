package domain

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// TokenUpdateFunc is a callback invoked when the Gmail access token is
// refreshed, so the new token pair can be persisted.
type TokenUpdateFunc func(token *oauth2.Token) error

// EmailMessage is a fetched Gmail message, immutable once retrieved.
type EmailMessage struct {
	ID          string
	ThreadID    string
	Subject     string
	From        string
	Date        time.Time
	TextContent string
}

// MailProvider abstracts the Gmail listing/fetching helpers. The pipeline
// treats it as an opaque I/O provider.
type MailProvider interface {
	// ListMessageIDs returns the IDs of messages matching the Gmail query.
	ListMessageIDs(ctx context.Context, accessToken, refreshToken, query string, onTokenRefresh TokenUpdateFunc) ([]string, error)

	// GetMessage fetches a single message with its decoded text body.
	GetMessage(ctx context.Context, accessToken, refreshToken, messageID string, onTokenRefresh TokenUpdateFunc) (*EmailMessage, error)

	// ArchiveMessage removes the INBOX label when present; it is a no-op
	// for messages that are not in the inbox.
	ArchiveMessage(ctx context.Context, accessToken, refreshToken, messageID string, onTokenRefresh TokenUpdateFunc) error
}
