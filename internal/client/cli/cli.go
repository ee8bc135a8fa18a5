package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/accounts/internal/client/api"
	"github.com/iudanet/accounts/internal/client/storage"
)

type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

func New(apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// requireSession загружает сохраненную сессию и устанавливает токен
// в API клиент. Возвращает ошибку, если сессия отсутствует или истекла.
func (c *Cli) requireSession(ctx context.Context) (*storage.SessionData, error) {
	isAuth, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		return nil, fmt.Errorf("not authenticated. Please run 'accounts login' first")
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'accounts login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	c.apiClient.SetAuthToken(session.Token)
	return session, nil
}

func PrintUsage() {
	fmt.Println("Accounts Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  accounts [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version           Show version information")
	fmt.Println("  --server URL        Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH           Path to local database (default: accounts-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Register new user")
	fmt.Println("  verify-email <token>    Confirm email with the token from the email")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout (delete local session)")
	fmt.Println("  status                  Show authentication status")
	fmt.Println("  forgot-password         Request a password reset email")
	fmt.Println("  reset-password <token>  Set a new password with a reset token")
	fmt.Println("  list                    List all users")
	fmt.Println("  get <id>                Show user details")
	fmt.Println("  update <id>             Update user fields")
	fmt.Println("  delete <id>             Delete user")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  accounts register")
	fmt.Println("  accounts verify-email 4ad157099d9d1b7a...")
	fmt.Println("  accounts login")
	fmt.Println("  accounts list")
	fmt.Println("  accounts get b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  accounts --server https://example.com login")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
