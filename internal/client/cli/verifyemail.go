package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runVerifyEmail(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: accounts verify-email <token>")
	}
	token := args[0]

	fmt.Println("Verifying email...")

	resp, err := c.apiClient.VerifyEmail(ctx, token)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", resp.Message)
	return nil
}
