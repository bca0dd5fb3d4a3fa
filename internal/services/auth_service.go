package services

import (
	"context"

	"flowt.dev/flowt/internal/auth"
	apperrors "flowt.dev/flowt/internal/errors"
	repository "flowt.dev/flowt/internal/repositories"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// NeedsSetup reports whether the instance has no users yet and must run
// first-time setup.
func (s *AuthService) NeedsSetup(ctx context.Context) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// InitialSetup creates the first user as an administrator. Refused once any
// user exists.
func (s *AuthService) InitialSetup(ctx context.Context, username, password string) (auth.Caller, error) {
	if username == "" || password == "" {
		return auth.Caller{}, apperrors.ErrMissingFields
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return auth.Caller{}, err
	}
	if count > 0 {
		return auth.Caller{}, apperrors.ErrSetupComplete
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return auth.Caller{}, err
	}

	user, err := s.userRepo.Create(ctx, username, hash, true, nil)
	if err != nil {
		return auth.Caller{}, err
	}

	return auth.Caller{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

// Login verifies credentials and returns the caller identity on success.
// Lookup failure and password mismatch collapse into one error so the
// response does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (auth.Caller, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return auth.Caller{}, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return auth.Caller{}, apperrors.ErrInvalidCredentials
	}

	return auth.Caller{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}
