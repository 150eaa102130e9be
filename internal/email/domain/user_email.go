package domain

import "time"

// UserEmail is the persisted classification result for one Gmail message.
// InterviewBriefing holds a JSON-serialized BriefingDocument (or
// BriefingError) for interview invitations, empty otherwise.
type UserEmail struct {
	ID                string            `json:"id" gorm:"primaryKey"`
	UserID            string            `json:"user_id" gorm:"index;not null"`
	CompanyName       string            `json:"company_name"`
	ApplicationStatus ApplicationStatus `json:"application_status" gorm:"index"`
	JobTitle          string            `json:"job_title"`
	Subject           string            `json:"subject"`
	EmailFrom         string            `json:"email_from"`
	ReceivedAt        time.Time         `json:"received_at"`
	InterviewBriefing string            `json:"interview_briefing,omitempty" gorm:"type:text"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (UserEmail) TableName() string {
	return "user_emails"
}
