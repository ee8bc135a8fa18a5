package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/accounts/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAuthToken устанавливает session токен для защищенных запросов
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Authenticate выполняет аутентификацию пользователя
func (c *Client) Authenticate(ctx context.Context, req api.AuthenticateRequest) (*api.AuthenticateResponse, error) {
	var resp api.AuthenticateResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/authenticate", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("authenticate request failed: %w", err)
	}
	return &resp, nil
}

// VerifyEmail подтверждает email по одноразовому токену
func (c *Client) VerifyEmail(ctx context.Context, token string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/verify-email", api.VerifyEmailRequest{Token: token}, &resp)
	if err != nil {
		return nil, fmt.Errorf("verify email request failed: %w", err)
	}
	return &resp, nil
}

// ForgotPassword запрашивает письмо для сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/forgot-password", api.ForgotPasswordRequest{Email: email}, &resp)
	if err != nil {
		return nil, fmt.Errorf("forgot password request failed: %w", err)
	}
	return &resp, nil
}

// ValidateResetToken проверяет токен сброса пароля без его погашения
func (c *Client) ValidateResetToken(ctx context.Context, token string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/validate-reset-token", api.ValidateResetTokenRequest{Token: token}, &resp)
	if err != nil {
		return nil, fmt.Errorf("validate reset token request failed: %w", err)
	}
	return &resp, nil
}

// ResetPassword устанавливает новый пароль по токену сброса
func (c *Client) ResetPassword(ctx context.Context, token, password string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/users/reset-password", api.ResetPasswordRequest{Token: token, Password: password}, &resp)
	if err != nil {
		return nil, fmt.Errorf("reset password request failed: %w", err)
	}
	return &resp, nil
}

// ListUsers возвращает список всех пользователей (требует авторизации)
func (c *Client) ListUsers(ctx context.Context) (*api.UsersResponse, error) {
	var resp api.UsersResponse
	err := c.doRequest(ctx, "GET", "/api/v1/users", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return &resp, nil
}

// GetUser возвращает пользователя по ID (требует авторизации)
func (c *Client) GetUser(ctx context.Context, id string) (*api.User, error) {
	var resp api.User
	url := fmt.Sprintf("/api/v1/users/%s", id)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser обновляет профиль пользователя (требует авторизации)
func (c *Client) UpdateUser(ctx context.Context, id string, req api.UpdateUserRequest) (*api.User, error) {
	var resp api.User
	url := fmt.Sprintf("/api/v1/users/%s", id)
	err := c.doRequest(ctx, "PUT", url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &resp, nil
}

// DeleteUser удаляет пользователя по ID (требует авторизации)
func (c *Client) DeleteUser(ctx context.Context, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	url := fmt.Sprintf("/api/v1/users/%s", id)
	err := c.doRequest(ctx, "DELETE", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("delete user request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
