package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the root of every domain validation failure. The
	// entity-specific sentinels in this package wrap it, so callers can
	// match the whole family with a single errors.Is check.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when an operation is not permitted for
	// the acting identity.
	ErrUnauthorized = errors.New("unauthorized operation")
)
