// Package auth implements signup and login against the user store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"voicebrief/internal/app/repository"
)

// ErrInvalidCredentials is returned for a wrong password and for an
// unknown username alike, so login failures don't reveal which.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUsernameTaken mirrors the repository error for callers that only
// import this package.
var ErrUsernameTaken = repository.ErrUsernameTaken

// Service handles account creation and credential checks.
type Service struct {
	users repository.UserDAO
}

// NewService creates an auth service backed by the given user store.
func NewService(users repository.UserDAO) *Service {
	return &Service{users: users}
}

// Signup hashes the password and creates the account. Duplicate
// usernames surface as ErrUsernameTaken; the storage constraint makes
// this safe under concurrent signups.
func (s *Service) Signup(ctx context.Context, username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.CreateUser(ctx, username, email, string(hash)); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies the supplied credentials and returns the username on
// success.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}
