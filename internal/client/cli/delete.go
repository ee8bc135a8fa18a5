package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: accounts delete <id>")
	}
	id := args[0]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	// Запрашиваем подтверждение
	confirm, err := readInput(fmt.Sprintf("Delete user %s? (yes/no): ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(confirm, "yes") && !strings.EqualFold(confirm, "y") {
		fmt.Println("Aborted.")
		return nil
	}

	resp, err := c.apiClient.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", resp.Message)
	return nil
}
