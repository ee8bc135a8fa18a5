// Package server initializes and runs the accounts HTTP server.
// It wires together storage, the token engine, the mail sender and
// the HTTP handlers, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/accounts/internal/server/config"
	"github.com/iudanet/accounts/internal/server/mail"
	"github.com/iudanet/accounts/internal/server/storage/sqlite"
	"github.com/iudanet/accounts/internal/server/tokens"
	"github.com/iudanet/accounts/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

// App собирает все зависимости сервера и управляет его жизненным циклом
type App struct {
	config  *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	service *users.Service
	engine  *tokens.Engine
	version string
}

// NewApp создает приложение: открывает хранилище, применяет миграции
// и связывает сервисы
func NewApp(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	engine := tokens.NewEngine(store, tokens.Config{
		Secret:          []byte(cfg.SecretKey),
		SessionTokenTTL: cfg.SessionTokenTTL,
		ResetTokenTTL:   cfg.ResetTokenTTL,
	})

	sender, err := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.Origin)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	service := users.NewService(logger, store, engine, sender)

	return &App{
		config:  cfg,
		logger:  logger,
		storage: store,
		service: service,
		engine:  engine,
		version: version,
	}, nil
}

// Run запускает HTTP сервер и блокируется до получения сигнала
// завершения или фатальной ошибки сервера
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	srv := &http.Server{
		Addr:              app.config.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", app.config.Addr, "version", app.version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		app.storage.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown error", "error", err)
	}

	if err := app.storage.Close(); err != nil {
		app.logger.Error("Storage close error", "error", err)
	}

	app.logger.Info("Server stopped")
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}
