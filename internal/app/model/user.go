package model

import "time"

// User is a registered account. Usernames are unique, enforced by the
// storage layer rather than an application-level existence check.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
