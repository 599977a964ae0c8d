package user

import (
	"errors"
)

// Custom error types for the user package
var (
	// ErrInvalidInput indicates the provided input is invalid
	ErrInvalidInput = errors.New("Invalid input provided")

	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("User not found.")

	// ErrEmailAlreadyExists indicates the email is already registered
	ErrEmailAlreadyExists = errors.New("User already exists with this email.")

	// ErrCacheError indicates an error occurred with the Redis cache
	ErrCacheError = errors.New("Cache operation failed")
)
