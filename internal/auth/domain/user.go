package domain

import "time"

// User is an application user whose Gmail inbox is analyzed. StartDate
// bounds how far back ingestion looks. The Gmail token pair is stored so
// background ingestion can run without an interactive session.
type User struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"uniqueIndex;not null"`
	StartDate time.Time `json:"start_date"`

	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
