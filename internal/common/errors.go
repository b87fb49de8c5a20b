// Package common defines shared sentinel errors used across inkwell
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage failure")

	// Validation errors (caller input).
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors.
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnauthorized       = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")

	// Session token errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
