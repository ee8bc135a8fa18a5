package server

import (
	"net/http"

	"github.com/iudanet/accounts/internal/server/handlers"
	"github.com/iudanet/accounts/internal/server/middleware"
)

// Router строит ServeMux со всеми маршрутами API.
// Публичные маршруты (регистрация, аутентификация, работа с токенами)
// доступны без авторизации, CRUD операции требуют session токен.
func (app *App) Router() http.Handler {
	authHandler := handlers.NewAuthHandler(app.logger, app.service)
	usersHandler := handlers.NewUsersHandler(app.logger, app.service)
	healthHandler := handlers.NewHealthHandler(app.logger, app.version)

	requireAuth := middleware.AuthMiddleware(app.logger, app.engine)

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("POST /api/v1/users/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/users/authenticate", authHandler.Authenticate)
	mux.HandleFunc("POST /api/v1/users/verify-email", authHandler.VerifyEmail)
	mux.HandleFunc("POST /api/v1/users/forgot-password", authHandler.ForgotPassword)
	mux.HandleFunc("POST /api/v1/users/validate-reset-token", authHandler.ValidateResetToken)
	mux.HandleFunc("POST /api/v1/users/reset-password", authHandler.ResetPassword)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Защищенные маршруты
	mux.Handle("GET /api/v1/users", requireAuth(http.HandlerFunc(usersHandler.List)))
	mux.Handle("GET /api/v1/users/{id}", requireAuth(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PUT /api/v1/users/{id}", requireAuth(http.HandlerFunc(usersHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}", requireAuth(http.HandlerFunc(usersHandler.Delete)))

	// Общие middleware: recovery снаружи, логирование внутри
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(app.logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(app.logger)(handler)

	return handler
}
