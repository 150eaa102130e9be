package repository

import (
	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *authdomain.User) error
	// FindByID finds a user by ID; returns nil when not found
	FindByID(id string) (*authdomain.User, error)
	// FindByEmail finds a user by email; returns nil when not found
	FindByEmail(email string) (*authdomain.User, error)
	// Update updates an existing user
	Update(user *authdomain.User) error
	// UpdateTokens replaces the stored Gmail token pair
	UpdateTokens(id, accessToken, refreshToken string) error
}
