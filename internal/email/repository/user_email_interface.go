package repository

import (
	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
)

// UserEmailRepository defines the interface for persisted email results
type UserEmailRepository interface {
	// Upsert inserts the record or replaces an existing one with the
	// same message ID (re-runs can see already-processed messages)
	Upsert(email *emaildomain.UserEmail) error

	// FindByUserID returns a page of a user's classified emails, newest
	// first, plus the total count
	FindByUserID(userID string, limit, offset int) ([]*emaildomain.UserEmail, int64, error)

	// Exists reports whether a message was already persisted for a user
	Exists(userID, emailID string) (bool, error)
}
