// Package service implements the business rules on top of the repositories.
package service

import "errors"

// Sentinel errors forming the failure taxonomy surfaced by the services.
// Handlers map them onto HTTP status codes.
var (
	// ErrValidation marks a missing or empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unknown entity id.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique field.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials marks a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
