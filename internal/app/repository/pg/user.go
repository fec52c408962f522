package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"voicebrief/internal/app/model"
	"voicebrief/internal/app/repository"
)

// unique_violation per postgres error code table
const uniqueViolation = "23505"

// CreateUser inserts a new account. A unique_violation on username is
// mapped to repository.ErrUsernameTaken.
func (pdb *PostgresDB) CreateUser(ctx context.Context, username, email, passwordHash string) error {
	insertSQL := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3);`
	_, err := pdb.db.ExecContext(ctx, insertSQL, username, email, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindUserByUsername returns the user or repository.ErrUserNotFound.
func (pdb *PostgresDB) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1;`
	row := pdb.db.QueryRowContext(ctx, query, username)

	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &u, nil
}
