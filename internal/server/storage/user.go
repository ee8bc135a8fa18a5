package storage

import (
	"context"
	"time"

	"github.com/iudanet/accounts/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrEmailTaken if email already exists
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByResetToken retrieves user by a reset token that has not
	// expired at the given instant. Returns ErrUserNotFound otherwise.
	// Read-only: the token stays live.
	GetUserByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)

	// ListUsers retrieves all users ordered by creation time
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUser updates email, username and password hash
	// Returns ErrUserNotFound if user doesn't exist,
	// ErrEmailTaken if the new email belongs to another user
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser deletes user by ID
	// Returns ErrUserNotFound if user doesn't exist
	DeleteUser(ctx context.Context, userID string) error

	// SetVerificationToken stores a new verification token for the user
	SetVerificationToken(ctx context.Context, userID, token string) error

	// ConsumeVerificationToken atomically clears the verification token
	// and stamps verified_at. The token can be consumed exactly once:
	// a second call with the same token returns ErrTokenNotFound.
	ConsumeVerificationToken(ctx context.Context, token string, verifiedAt time.Time) (*models.User, error)

	// SetResetToken stores a new reset token with its expiry,
	// overwriting any previous one for the user
	SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// ConsumeResetToken atomically sets the new password hash, stamps
	// password_reset_at and clears the reset token, provided the token
	// exists and has not expired at the given instant.
	// Returns ErrTokenNotFound for unknown or expired tokens. Exactly one
	// of several concurrent calls with the same token succeeds.
	ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) error
}
