package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/accounts/internal/validation"
)

func (c *Cli) runForgotPassword(ctx context.Context) error {
	fmt.Println("=== Forgot Password ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	resp, err := c.apiClient.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %s\n", resp.Message)
	return nil
}

func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: accounts reset-password <token>")
	}
	token := args[0]

	fmt.Println("=== Reset Password ===")
	fmt.Println()

	// Сначала проверяем токен, чтобы не запрашивать пароль впустую
	if _, err := c.apiClient.ValidateResetToken(ctx, token); err != nil {
		return err
	}

	password, err := readPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

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

	resp, err := c.apiClient.ResetPassword(ctx, token, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %s\n", resp.Message)
	return nil
}
