package usecase

import (
	"time"

	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	authdto "github.com/gregschwartz/jobseeker-analytics/internal/auth/dto"
	"github.com/gregschwartz/jobseeker-analytics/internal/auth/repository"
)

// defaultLookback bounds the initial Gmail query when no start date is
// given at registration.
const defaultLookback = 90 * 24 * time.Hour

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) RegisterUser(req *authdto.RegisterUserRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.AccessToken = req.AccessToken
		if req.RefreshToken != "" {
			existing.RefreshToken = req.RefreshToken
		}
		if !req.StartDate.IsZero() {
			existing.StartDate = req.StartDate
		}
		if err := u.userRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().Add(-defaultLookback)
	}

	user := &authdomain.User{
		UserEmail:    req.Email,
		StartDate:    startDate,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) GetUser(id string) (*authdomain.User, error) {
	return u.userRepo.FindByID(id)
}
