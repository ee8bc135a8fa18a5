package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	// Проверяем наличие сохраненной сессии
	isAuth, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'accounts login' to authenticate.")
		return nil
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	fmt.Println("Status: Authenticated")
	fmt.Printf("Username: %s\n", session.Username)
	fmt.Printf("Email: %s\n", session.Email)

	if session.ExpiresAt > 0 {
		expiresAt := time.Unix(session.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		fmt.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			fmt.Println("⚠️  Token has expired. Please login again.")
		}
	}

	return nil
}
