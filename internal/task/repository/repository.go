package repository

import (
	"time"

	"github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
)

// TaskRunRepository defines the interface for ingestion run bookkeeping
type TaskRunRepository interface {
	// Find returns the run for a user; nil when the user never ran
	Find(userID string) (*domain.TaskRun, error)

	// Save inserts or updates a run record
	Save(run *domain.TaskRun) error

	// FindStale returns runs still STARTED whose last update is older
	// than the cutoff; these are treated as stuck, not finished
	FindStale(cutoff time.Time) ([]*domain.TaskRun, error)
}
