package storage

import (
	"context"
)

// SessionStorage defines interface for storing the authenticated
// session on the client. It works with raw data and performs no
// network calls itself.
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a valid session exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents the authenticated session in storage.
// Token is the session JWT issued by the server; ExpiresAt is its
// expiry as a Unix timestamp, taken from the token's exp claim.
type SessionData struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
