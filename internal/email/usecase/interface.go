package usecase

import (
	"context"

	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
	taskdomain "github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
)

// Classifier assigns an application status to a raw email body.
type Classifier interface {
	Classify(ctx context.Context, emailText string) (*emaildomain.Classification, error)
}

// BriefingService generates an interview-preparation document. Exactly one
// of the two return values is non-nil.
type BriefingService interface {
	Generate(ctx context.Context, req emaildomain.BriefingRequest) (*emaildomain.BriefingDocument, *emaildomain.BriefingError)
}

// EmailUsecase defines the email ingestion operations
type EmailUsecase interface {
	// ProcessEmails runs the full fetch/classify/persist pipeline for a
	// user. A second call while a fresh run is in progress is a no-op.
	ProcessEmails(ctx context.Context, userID string) error

	// ProcessingStatus returns the user's current run record; nil when
	// the user never started a run.
	ProcessingStatus(userID string) (*taskdomain.TaskRun, error)

	// ListEmails returns a page of the user's classified emails, newest
	// first, plus the total count.
	ListEmails(userID string, limit, offset int) ([]*emaildomain.UserEmail, int64, error)

	// ArchiveEmail archives the message in the user's Gmail inbox.
	ArchiveEmail(ctx context.Context, userID, emailID string) error
}
