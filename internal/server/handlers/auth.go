package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/accounts/internal/server/tokens"
	"github.com/iudanet/accounts/internal/server/users"
	"github.com/iudanet/accounts/internal/validation"
	"github.com/iudanet/accounts/pkg/api"
)

// AuthHandler обрабатывает публичные запросы: регистрацию, аутентификацию,
// подтверждение email и сброс пароля
type AuthHandler struct {
	logger  *slog.Logger
	service *users.Service
}

// NewAuthHandler создает новый handler для публичных операций
func NewAuthHandler(logger *slog.Logger, service *users.Service) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

// Register обрабатывает POST /api/v1/users/register
// Ответ одинаков для нового и уже занятого email (защита от enumeration)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация полей
	if err := validation.ValidateEmail(req.Email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Register(ctx, req.Email, req.Username, req.Password); err != nil {
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "Registration successful, please check your email for verification instructions",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Authenticate обрабатывает POST /api/v1/users/authenticate
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode authenticate request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(h.logger, w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "authentication failed")
			sendError(h.logger, w, users.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.AuthenticateResponse{
		User:  toAPIUser(user),
		Token: token,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// VerifyEmail обрабатывает POST /api/v1/users/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode verify-email request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		sendError(h.logger, w, "token is required", http.StatusBadRequest)
		return
	}

	if err := h.service.VerifyEmail(ctx, req.Token); err != nil {
		if errors.Is(err, tokens.ErrInvalidToken) {
			h.logger.WarnContext(ctx, "email verification failed")
			sendError(h.logger, w, "verification failed", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify email", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "Verification successful, you can now login",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ForgotPassword обрабатывает POST /api/v1/users/forgot-password
// Всегда возвращает успех, существование email не раскрывается
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode forgot-password request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.ForgotPassword(ctx, req.Email); err != nil {
		h.logger.ErrorContext(ctx, "failed to process forgot-password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "Please check your email for password reset instructions",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ValidateResetToken обрабатывает POST /api/v1/users/validate-reset-token
// Read-only проверка: токен остается живым
func (h *AuthHandler) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ValidateResetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode validate-reset-token request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		sendError(h.logger, w, "token is required", http.StatusBadRequest)
		return
	}

	if err := h.service.ValidateResetToken(ctx, req.Token); err != nil {
		if errors.Is(err, tokens.ErrInvalidToken) {
			sendError(h.logger, w, "invalid token", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to validate reset token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "Token is valid",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ResetPassword обрабатывает POST /api/v1/users/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode reset-password request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		sendError(h.logger, w, "token is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.ResetPassword(ctx, req.Token, req.Password); err != nil {
		if errors.Is(err, tokens.ErrInvalidToken) {
			h.logger.WarnContext(ctx, "password reset failed")
			sendError(h.logger, w, "invalid token", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to reset password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "Password reset successful, you can now login",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
