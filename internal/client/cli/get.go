package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: accounts get <id>")
	}
	id := args[0]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	user, err := c.apiClient.GetUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", user.ID)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Verified: %t\n", user.IsVerified)
	if user.VerifiedAt != nil {
		fmt.Printf("Verified at: %s\n", user.VerifiedAt.Format(time.RFC3339))
	}
	if user.PasswordResetAt != nil {
		fmt.Printf("Password reset at: %s\n", user.PasswordResetAt.Format(time.RFC3339))
	}
	fmt.Printf("Created:  %s\n", user.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:  %s\n", user.UpdatedAt.Format(time.RFC3339))

	return nil
}
