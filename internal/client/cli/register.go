package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/accounts/internal/validation"
	"github.com/iudanet/accounts/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	// Запрашиваем email
	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	// Запрашиваем username
	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	// Запрашиваем пароль
	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Подтверждение пароля
	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Registering user...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %s\n", resp.Message)
	fmt.Println()
	fmt.Println("Run 'accounts verify-email <token>' with the token from the email,")
	fmt.Println("then 'accounts login' to start using the service.")

	return nil
}
