package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/accounts/internal/validation"
	"github.com/iudanet/accounts/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: accounts update <id>")
	}
	id := args[0]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	fmt.Println("=== Update User ===")
	fmt.Println("Leave a field empty to keep its current value.")
	fmt.Println()

	var req api.UpdateUserRequest

	email, err := readInput("New email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return err
		}
		req.Email = &email
	}

	username, err := readInput("New username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username != "" {
		if err := validation.ValidateUsername(username); err != nil {
			return err
		}
		req.Username = &username
	}

	password, err := readPassword("New password (empty to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != "" {
		confirmPassword, err := readPassword("Confirm new password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if password != confirmPassword {
			return fmt.Errorf("passwords do not match")
		}
		if err := validation.ValidatePassword(password); err != nil {
			return err
		}
		req.Password = &password
	}

	if req.Email == nil && req.Username == nil && req.Password == nil {
		fmt.Println("Nothing to update.")
		return nil
	}

	user, err := c.apiClient.UpdateUser(ctx, id, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ User updated!")
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email: %s\n", user.Email)

	return nil
}
