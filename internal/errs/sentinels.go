// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication. Must not reveal
	// whether the username or the password was wrong.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation indicates missing or invalid required fields.
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamUnavailable indicates every metrics backend failed at the
	// transport level.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrAlreadyExists indicates a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")
)
