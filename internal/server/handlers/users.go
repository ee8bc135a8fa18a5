package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/accounts/internal/server/storage"
	"github.com/iudanet/accounts/internal/server/users"
	"github.com/iudanet/accounts/internal/validation"
	"github.com/iudanet/accounts/pkg/api"
)

// UsersHandler обрабатывает авторизованные CRUD запросы над пользователями
type UsersHandler struct {
	logger  *slog.Logger
	service *users.Service
}

// NewUsersHandler создает новый handler для CRUD операций
func NewUsersHandler(logger *slog.Logger, service *users.Service) *UsersHandler {
	return &UsersHandler{
		logger:  logger,
		service: service,
	}
}

// List обрабатывает GET /api/v1/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.GetAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.UsersResponse{
		Users: make([]api.User, 0, len(list)),
	}
	for _, user := range list {
		resp.Users = append(resp.Users, toAPIUser(user))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/users/{id}
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "user id is required", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, toAPIUser(user), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/users/{id}
// Частичное обновление: применяются только переданные поля,
// неизвестные поля отклоняются
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "user id is required", http.StatusBadRequest)
		return
	}

	var req api.UpdateUserRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация только переданных полей
	if req.Email != nil {
		if err := validation.ValidateEmail(*req.Email); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Username != nil {
		if err := validation.ValidateUsername(*req.Username); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Password != nil {
		if err := validation.ValidatePassword(*req.Password); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	user, err := h.service.Update(ctx, id, users.UpdateParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			sendError(h.logger, w, "user not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrEmailTaken):
			sendError(h.logger, w, "email already taken", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to update user", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(h.logger, w, toAPIUser(user), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/users/{id}
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "user id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MessageResponse{
		Message: "User deleted successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
