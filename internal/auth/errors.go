package auth

import (
	"errors"
)

// Custom error types for the auth package. The error text doubles as the
// user-facing response message.
var (
	// ErrUserExists indicates the email is already registered
	ErrUserExists = errors.New("User already exists with this email.")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which check failed
	ErrInvalidCredentials = errors.New("Incorrect email or password.")

	// ErrRoleMismatch indicates the credentials are valid but the account
	// was registered under a different role
	ErrRoleMismatch = errors.New("Account does not exist with the current role.")

	// ErrMissingSecret indicates the token signing secret is not configured
	ErrMissingSecret = errors.New("Server configuration error. SECRET_KEY is missing.")

	// ErrRateLimited indicates too many failed login attempts for the email
	ErrRateLimited = errors.New("Too many failed login attempts. Please try again later.")
)
