package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/accounts/internal/models"
	"github.com/iudanet/accounts/pkg/api"
)

// contextKey тип для ключей контекста, чтобы не пересекаться с чужими
type contextKey string

// UserIDKey ключ контекста с идентификатором аутентифицированного пользователя
const UserIDKey contextKey = "user_id"

// toAPIUser проецирует модель в профиль для API.
// Хеш пароля и живые токены наружу не попадают.
func toAPIUser(user *models.User) api.User {
	return api.User{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		IsVerified:      user.IsVerified(),
		VerifiedAt:      user.VerifiedAt,
		PasswordResetAt: user.PasswordResetAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
