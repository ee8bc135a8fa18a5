package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that another user already owns this email
	ErrEmailTaken = errors.New("email already taken")

	// ErrTokenNotFound indicates that a one-time token is unknown,
	// already consumed or expired
	ErrTokenNotFound = errors.New("token not found")
)
