package cli

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/accounts/internal/client/storage"
	"github.com/iudanet/accounts/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	// Запрашиваем email
	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	// Запрашиваем пароль
	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	resp, err := c.apiClient.Authenticate(ctx, api.AuthenticateRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Сохраняем сессию локально
	session := &storage.SessionData{
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Username:  resp.User.Username,
		Token:     resp.Token,
		ExpiresAt: tokenExpiry(resp.Token),
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Username: %s\n", resp.User.Username)
	fmt.Println()
	fmt.Println("Your session has been saved.")

	return nil
}

// tokenExpiry извлекает exp claim из JWT без проверки подписи.
// Подпись проверяет сервер; клиенту срок нужен только для
// локальной проверки актуальности сессии.
func tokenExpiry(tokenString string) int64 {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Unix()
}
