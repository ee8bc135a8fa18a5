package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/accounts/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/users/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Декодируем запрос
		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		// Проверяем поля запроса
		assert.Equal(t, "alice@example.com", req.Email)
		assert.Equal(t, "alice", req.Username)
		assert.NotEmpty(t, req.Password)

		// Возвращаем успешный ответ
		w.WriteHeader(http.StatusOK)
		resp := api.MessageResponse{
			Message: "Registration successful, please check your email for verification instructions",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx := context.Background()
	resp, err := client.Register(ctx, api.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "super_secret_password_123",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Contains(t, resp.Message, "Registration successful")
}

// TestClient_Authenticate проверяет аутентификацию и обработку ошибок
func TestClient_Authenticate(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
		wantErr        bool
	}{
		{
			name:       "successful authentication",
			statusCode: http.StatusOK,
			responseBody: api.AuthenticateResponse{
				User:  api.User{ID: "user-123", Username: "alice", Email: "alice@example.com"},
				Token: "jwt-token",
			},
			wantErr: false,
		},
		{
			name:       "invalid credentials",
			statusCode: http.StatusUnauthorized,
			responseBody: api.ErrorResponse{
				Error:   "Unauthorized",
				Message: "email or password is incorrect",
			},
			wantErr:        true,
			expectedErrMsg: "server error (401): email or password is incorrect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/users/authenticate", r.URL.Path)
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.Authenticate(context.Background(), api.AuthenticateRequest{
				Email:    "alice@example.com",
				Password: "password",
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErrMsg)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "jwt-token", resp.Token)
				assert.Equal(t, "user-123", resp.User.ID)
			}
		})
	}
}

// TestClient_AuthHeader проверяет, что защищенные запросы несут Bearer токен
func TestClient_AuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-session-token", r.Header.Get("Authorization"))
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/users", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.UsersResponse{
			Users: []api.User{{ID: "u1", Username: "alice"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("my-session-token")

	resp, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "alice", resp.Users[0].Username)
}

// TestClient_GetUser проверяет построение пути с идентификатором
func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/user-42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.User{ID: "user-42", Username: "bob"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	user, err := client.GetUser(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

// TestClient_DeleteUser проверяет DELETE запрос
func TestClient_DeleteUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/users/user-42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "User deleted successfully"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.DeleteUser(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", resp.Message)
}

// TestClient_ServerError проверяет обработку не-JSON ответа с ошибкой
func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
