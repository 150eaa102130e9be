package usecase

import (
	"testing"
	"time"

	authdomain "github.com/gregschwartz/jobseeker-analytics/internal/auth/domain"
	authdto "github.com/gregschwartz/jobseeker-analytics/internal/auth/dto"
)

type fakeUserRepo struct {
	byEmail map[string]*authdomain.User
	created []*authdomain.User
	updated []*authdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*authdomain.User)}
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	if user.UserID == "" {
		user.UserID = "generated-id"
	}
	f.byEmail[user.UserEmail] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range f.byEmail {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.byEmail[user.UserEmail] = user
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) UpdateTokens(id, accessToken, refreshToken string) error {
	return nil
}

func TestRegisterUserCreatesNew(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	user, err := uc.RegisterUser(&authdto.RegisterUserRequest{
		Email:        "me@example.com",
		AccessToken:  "access",
		RefreshToken: "refresh",
		StartDate:    start,
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
	if user.StartDate != start {
		t.Errorf("StartDate = %v, want %v", user.StartDate, start)
	}
	if user.AccessToken != "access" || user.RefreshToken != "refresh" {
		t.Errorf("tokens not stored: %+v", user)
	}
}

func TestRegisterUserDefaultsStartDate(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	user, err := uc.RegisterUser(&authdto.RegisterUserRequest{
		Email:       "me@example.com",
		AccessToken: "access",
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if user.StartDate.IsZero() {
		t.Error("StartDate should default to a bounded lookback window")
	}
	if time.Since(user.StartDate) > defaultLookback+time.Hour {
		t.Errorf("StartDate = %v, further back than the default lookback", user.StartDate)
	}
}

func TestRegisterUserRefreshesExisting(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["me@example.com"] = &authdomain.User{
		UserID:       "u1",
		UserEmail:    "me@example.com",
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	uc := NewUserUsecase(repo)

	user, err := uc.RegisterUser(&authdto.RegisterUserRequest{
		Email:       "me@example.com",
		AccessToken: "new-access",
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("existing user should not be recreated")
	}
	if len(repo.updated) != 1 {
		t.Fatalf("updated = %d, want 1", len(repo.updated))
	}
	if user.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", user.UserID)
	}
	if user.AccessToken != "new-access" {
		t.Errorf("AccessToken = %q, want new-access", user.AccessToken)
	}
	if user.RefreshToken != "old-refresh" {
		t.Errorf("RefreshToken = %q, an empty refresh token must not clobber the stored one", user.RefreshToken)
	}
}
