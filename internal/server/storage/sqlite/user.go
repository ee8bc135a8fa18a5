package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/accounts/internal/models"
	"github.com/iudanet/accounts/internal/server/storage"
)

const userColumns = `id, email, username, password_hash, verification_token, verified_at,
		reset_token, reset_token_expires_at, password_reset_at, created_at, updated_at`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.VerificationToken,
		user.VerifiedAt,
		user.ResetToken,
		user.ResetTokenExpiresAt,
		user.PasswordResetAt,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		// Проверяем на duplicate email
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return s.getUser(ctx, query, userID)
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return s.getUser(ctx, query, email)
}

// GetUserByResetToken retrieves user by a non-expired reset token
func (s *Storage) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = ? AND reset_token_expires_at > ?`
	return s.getUser(ctx, query, token, now)
}

// ListUsers retrieves all users ordered by creation time
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []*models.User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// UpdateUser updates email, username and password hash
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = ?, username = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// DeleteUser deletes user by ID
func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// SetVerificationToken stores a new verification token for the user
func (s *Storage) SetVerificationToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET verification_token = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, token, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set verification token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// ConsumeVerificationToken atomically clears the verification token and
// stamps verified_at. Single conditional UPDATE: of several concurrent
// calls with the same token exactly one sees the row.
func (s *Storage) ConsumeVerificationToken(ctx context.Context, token string, verifiedAt time.Time) (*models.User, error) {
	query := `
		UPDATE users
		SET verification_token = NULL, verified_at = ?, updated_at = ?
		WHERE verification_token = ?
		RETURNING id
	`

	var userID string
	err := s.db.QueryRowContext(ctx, query, verifiedAt, verifiedAt, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to consume verification token: %w", err)
	}

	return s.GetUserByID(ctx, userID)
}

// SetResetToken stores a new reset token, overwriting any previous one
func (s *Storage) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token = ?, reset_token_expires_at = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, token, expiresAt, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// ConsumeResetToken atomically applies the new password hash and clears
// the reset token, provided the token is live at the given instant
func (s *Storage) ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password_hash = ?, password_reset_at = ?, reset_token = NULL,
		    reset_token_expires_at = NULL, updated_at = ?
		WHERE reset_token = ? AND reset_token_expires_at > ?
	`

	result, err := s.db.ExecContext(ctx, query, passwordHash, now, now, token, now)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTokenNotFound
	}

	return nil
}

// getUser выполняет запрос, возвращающий одного пользователя
func (s *Storage) getUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanUser читает строку users в модель, разворачивая NULL-колонки
func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}

	var (
		verificationToken   sql.NullString
		verifiedAt          sql.NullTime
		resetToken          sql.NullString
		resetTokenExpiresAt sql.NullTime
		passwordResetAt     sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&verificationToken,
		&verifiedAt,
		&resetToken,
		&resetTokenExpiresAt,
		&passwordResetAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if verificationToken.Valid {
		user.VerificationToken = &verificationToken.String
	}
	if verifiedAt.Valid {
		user.VerifiedAt = &verifiedAt.Time
	}
	if resetToken.Valid {
		user.ResetToken = &resetToken.String
	}
	if resetTokenExpiresAt.Valid {
		user.ResetTokenExpiresAt = &resetTokenExpiresAt.Time
	}
	if passwordResetAt.Valid {
		user.PasswordResetAt = &passwordResetAt.Time
	}

	return user, nil
}
