package usecase

import (
	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	authdto "github.com/gregschwartz/jobseeker-analytics/internal/auth/dto"
)

// UserUsecase defines the user account operations
type UserUsecase interface {
	// RegisterUser creates the user or, when the email is already known,
	// refreshes the stored token pair
	RegisterUser(req *authdto.RegisterUserRequest) (*authdomain.User, error)

	// GetUser returns the user by ID; nil when not found
	GetUser(id string) (*authdomain.User, error)
}
