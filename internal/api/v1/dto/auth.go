package dto

import (
	"voicebrief/internal/api/errors"
)

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Username string `form:"username" binding:"required,max=64"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Validate performs domain-specific validation
func (r *SignupRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.Username == "" {
		validationErrors["username"] = "username is required"
	}
	if r.Password == "" {
		validationErrors["password"] = "password is required"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid signup request", validationErrors)
	}
	return nil
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
