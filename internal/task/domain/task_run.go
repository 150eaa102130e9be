package domain

import "time"

// RunStatus represents the state of one ingestion run.
type RunStatus string

const (
	// RunStarted marks a run in progress. A run left in this state past
	// the staleness threshold is treated as stuck and eligible for retry,
	// never as finished.
	RunStarted RunStatus = "STARTED"
	// RunFinished marks a run whose fetched emails were all processed.
	RunFinished RunStatus = "FINISHED"
)

// TaskRun tracks one user's email ingestion run. Counters only ever grow
// within a run; a fresh run resets them.
type TaskRun struct {
	UserID          string    `json:"user_id" gorm:"primaryKey"`
	Status          RunStatus `json:"status" gorm:"not null"`
	ProcessedEmails int       `json:"processed_emails"`
	TotalEmails     int       `json:"total_emails"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (TaskRun) TableName() string {
	return "task_runs"
}
