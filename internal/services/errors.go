package services

import "errors"

// Sentinel errors the handlers map onto the HTTP error taxonomy.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("invalid password")
	ErrEmptyText     = errors.New("text is required")
)
