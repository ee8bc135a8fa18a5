package tokens

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/accounts/internal/models"
	"github.com/iudanet/accounts/internal/server/storage"
)

// ErrInvalidToken indicates that a one-time token is unknown, already
// consumed or expired. Callers must not distinguish these cases.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	// tokenEntropyBytes количество случайных байт в one-time токене.
	// 40 байт в hex дают непересекающуюся строку из 80 символов.
	tokenEntropyBytes = 40

	// DefaultSessionTokenTTL срок жизни session токена
	DefaultSessionTokenTTL = 7 * 24 * time.Hour

	// DefaultResetTokenTTL срок жизни reset токена
	DefaultResetTokenTTL = 24 * time.Hour

	tokenIssuer = "accounts"
)

// Config содержит настройки движка токенов
type Config struct {
	Secret          []byte        // HMAC секрет для подписи session токенов
	SessionTokenTTL time.Duration // срок жизни session токена (по умолчанию 7 дней)
	ResetTokenTTL   time.Duration // срок жизни reset токена (по умолчанию 24 часа)
}

// Engine управляет жизненным циклом one-time токенов (подтверждение email,
// сброс пароля) и выпускает подписанные session токены.
// Verification токены намеренно не имеют срока действия; reset токены
// живут ResetTokenTTL с момента выпуска.
type Engine struct {
	users storage.UserStorage
	now   func() time.Time
	cfg   Config
}

// NewEngine создает движок поверх хранилища пользователей
func NewEngine(users storage.UserStorage, cfg Config) *Engine {
	if cfg.SessionTokenTTL == 0 {
		cfg.SessionTokenTTL = DefaultSessionTokenTTL
	}
	if cfg.ResetTokenTTL == 0 {
		cfg.ResetTokenTTL = DefaultResetTokenTTL
	}
	return &Engine{
		users: users,
		cfg:   cfg,
		now:   time.Now,
	}
}

// IssueVerificationToken generates a new verification token and binds it
// to the user record. The returned token goes into the verification email.
func (e *Engine) IssueVerificationToken(ctx context.Context, user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	if err := e.users.SetVerificationToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("failed to store verification token: %w", err)
	}

	return token, nil
}

// ConsumeVerificationToken redeems a verification token exactly once:
// the matching record gets verified_at stamped and the token cleared in a
// single atomic step. A second call with the same token fails.
func (e *Engine) ConsumeVerificationToken(ctx context.Context, token string) (*models.User, error) {
	user, err := e.users.ConsumeVerificationToken(ctx, token, e.now())
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to consume verification token: %w", err)
	}

	return user, nil
}

// IssueResetToken generates a new reset token valid until now+ResetTokenTTL,
// overwriting any previous reset token for the user.
func (e *Engine) IssueResetToken(ctx context.Context, user *models.User) (string, time.Time, error) {
	token, err := generateToken()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := e.now().Add(e.cfg.ResetTokenTTL)

	if err := e.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, expiresAt, nil
}

// ValidateResetToken checks that a reset token exists and has not expired
// without consuming it. Used to let a client confirm validity before
// submitting a new password.
func (e *Engine) ValidateResetToken(ctx context.Context, token string) (*models.User, error) {
	user, err := e.users.GetUserByResetToken(ctx, token, e.now())
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to validate reset token: %w", err)
	}

	return user, nil
}

// ConsumeResetToken redeems a live reset token: applies the new password
// hash, stamps password_reset_at and clears the token atomically.
// Exactly one of several concurrent calls with the same token succeeds.
func (e *Engine) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) error {
	err := e.users.ConsumeResetToken(ctx, token, newPasswordHash, e.now())
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	return nil
}

// IssueSessionToken создает подписанный JWT session token.
// Идентификатор пользователя кладется в subject claim.
func (e *Engine) IssueSessionToken(userID string) (string, error) {
	now := e.now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(e.cfg.SessionTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(e.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken проверяет подпись и срок действия session токена
// и возвращает идентификатор пользователя из subject claim
func (e *Engine) ValidateSessionToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return e.cfg.Secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}

// generateToken возвращает криптографически случайную hex-строку
func generateToken() (string, error) {
	tokenBytes := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(tokenBytes), nil
}
