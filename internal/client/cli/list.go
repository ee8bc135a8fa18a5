package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.ListUsers(ctx)
	if err != nil {
		return err
	}

	if len(resp.Users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Printf("Users (%d):\n", len(resp.Users))
	fmt.Println()
	for _, user := range resp.Users {
		verified := " "
		if user.IsVerified {
			verified = "✓"
		}
		fmt.Printf("  [%s] %s  %s <%s>\n", verified, user.ID, user.Username, user.Email)
	}

	return nil
}
