package dto

import (
	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
)

// EmailsResponse is a page of classified emails.
type EmailsResponse struct {
	Emails []*emaildomain.UserEmail `json:"emails"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
	Total  int64                    `json:"total"`
}

// ProcessingResponse reports the state of a user's ingestion run.
type ProcessingResponse struct {
	Status          string `json:"status"`
	ProcessedEmails int    `json:"processed_emails"`
	TotalEmails     int    `json:"total_emails"`
}
