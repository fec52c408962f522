// Package repository defines the persistence interfaces backed by
// sqlite and postgres implementations.
package repository

import (
	"context"
	"errors"

	"voicebrief/internal/app/model"
)

var (
	// ErrUsernameTaken is returned when a username already exists.
	// Uniqueness is enforced by a storage-level constraint, so two
	// concurrent signups cannot both succeed.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// UserDAO persists user accounts.
type UserDAO interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// SummaryDAO persists processed uploads.
type SummaryDAO interface {
	RecordSummary(ctx context.Context, rec *model.SummaryRecord) (int, error)
	GetAllByUser(ctx context.Context, username string) ([]model.SummaryRecord, error)
}
