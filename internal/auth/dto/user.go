package dto

import (
	"time"

	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
)

type RegisterUserRequest struct {
	Email        string    `json:"email" binding:"required,email"`
	AccessToken  string    `json:"access_token" binding:"required"`
	RefreshToken string    `json:"refresh_token"`
	StartDate    time.Time `json:"start_date"`
}

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	StartDate time.Time `json:"start_date"`
}

func NewUserResponse(user *authdomain.User) *UserResponse {
	return &UserResponse{
		UserID:    user.UserID,
		Email:     user.UserEmail,
		StartDate: user.StartDate,
	}
}
