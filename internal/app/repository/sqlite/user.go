package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"voicebrief/internal/app/model"
	"voicebrief/internal/app/repository"
)

// CreateUser inserts a new account. The UNIQUE constraint on username
// turns a duplicate into repository.ErrUsernameTaken.
func (sdb *SQLiteDB) CreateUser(ctx context.Context, username, email, passwordHash string) error {
	insertSQL := `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?);`
	_, err := sdb.db.ExecContext(ctx, insertSQL, username, email, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return repository.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindUserByUsername returns the user or repository.ErrUserNotFound.
func (sdb *SQLiteDB) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?;`
	row := sdb.db.QueryRowContext(ctx, query, username)

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
