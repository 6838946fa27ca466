package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrUnauthenticated is returned for writes attempted without a principal in the context.
	// Reads in the same situation return empty results instead.
	ErrUnauthenticated = errors.New("authentication required")
)
