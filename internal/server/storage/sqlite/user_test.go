package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/accounts/internal/models"
	"github.com/iudanet/accounts/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func newTestUser(email, username string) *models.User {
	now := time.Now()
	return &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$examplehash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("alice@example.com", "alice")
	token := "aaaa1111"
	user.VerificationToken = &token

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	// Verify user was created
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	require.NotNil(t, retrieved.VerificationToken)
	assert.Equal(t, token, *retrieved.VerificationToken)
	assert.Nil(t, retrieved.VerifiedAt)
	assert.Nil(t, retrieved.ResetToken)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Create first user
	err := s.CreateUser(ctx, newTestUser("dup@example.com", "first"))
	require.NoError(t, err)

	// Try to create second user with same email
	err = s.CreateUser(ctx, newTestUser("dup@example.com", "second"))
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("findme@example.com", "findme")
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		name      string
		email     string
	}{
		{
			name:      "get existing user",
			email:     "findme@example.com",
			wantError: nil,
		},
		{
			name:      "get non-existent user",
			email:     "notfound@example.com",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetUserByEmail(ctx, tt.email)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, retrieved.ID)
				assert.Equal(t, user.Username, retrieved.Username)
			}
		})
	}
}

func TestUserStorage_ListUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	list, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for i := 0; i < 3; i++ {
		user := newTestUser(fmt.Sprintf("user%d@example.com", i), fmt.Sprintf("user%d", i))
		user.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, s.CreateUser(ctx, user))
	}

	list, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Упорядочены по времени создания
	assert.Equal(t, "user0", list[0].Username)
	assert.Equal(t, "user2", list[2].Username)
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("original@example.com", "original")
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		updates   *models.User
		name      string
	}{
		{
			name: "update email and username",
			updates: &models.User{
				ID:           user.ID,
				Email:        "updated@example.com",
				Username:     "updated",
				PasswordHash: "newhash",
				UpdatedAt:    time.Now(),
			},
			wantError: nil,
		},
		{
			name: "update non-existent user",
			updates: &models.User{
				ID:       "nonexistent",
				Email:    "foo@example.com",
				Username: "foo",
			},
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateUser(ctx, tt.updates)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				// Verify updates
				retrieved, err := s.GetUserByID(ctx, tt.updates.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.updates.Email, retrieved.Email)
				assert.Equal(t, tt.updates.Username, retrieved.Username)
				assert.Equal(t, tt.updates.PasswordHash, retrieved.PasswordHash)
			}
		})
	}
}

func TestUserStorage_UpdateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := newTestUser("first@example.com", "first")
	require.NoError(t, s.CreateUser(ctx, first))
	second := newTestUser("second@example.com", "second")
	require.NoError(t, s.CreateUser(ctx, second))

	second.Email = "first@example.com"
	err := s.UpdateUser(ctx, second)
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestUserStorage_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("todelete@example.com", "todelete")
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		name      string
		userID    string
	}{
		{
			name:      "delete existing user",
			userID:    user.ID,
			wantError: nil,
		},
		{
			name:      "delete non-existent user",
			userID:    "nonexistent",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.DeleteUser(ctx, tt.userID)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				// Verify user is deleted
				_, err := s.GetUserByID(ctx, tt.userID)
				assert.ErrorIs(t, err, storage.ErrUserNotFound)
			}
		})
	}
}

func TestUserStorage_ConsumeVerificationToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("verify@example.com", "verify")
	token := "verification-token-123"
	user.VerificationToken = &token
	require.NoError(t, s.CreateUser(ctx, user))

	// Первое погашение успешно
	verifiedAt := time.Now()
	consumed, err := s.ConsumeVerificationToken(ctx, token, verifiedAt)
	require.NoError(t, err)
	assert.Equal(t, user.ID, consumed.ID)
	assert.Nil(t, consumed.VerificationToken)
	require.NotNil(t, consumed.VerifiedAt)
	assert.WithinDuration(t, verifiedAt, *consumed.VerifiedAt, time.Second)

	// Повторное погашение того же токена — ошибка
	_, err = s.ConsumeVerificationToken(ctx, token, time.Now())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Неизвестный токен — ошибка
	_, err = s.ConsumeVerificationToken(ctx, "unknown", time.Now())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestUserStorage_ConsumeVerificationToken_Concurrent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("race@example.com", "race")
	token := "race-token"
	user.VerificationToken = &token
	require.NoError(t, s.CreateUser(ctx, user))

	const goroutines = 10

	var wg sync.WaitGroup
	var successCount int64
	var mu sync.Mutex

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ConsumeVerificationToken(ctx, token, time.Now())
			if err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Ровно одно погашение должно быть успешным
	assert.Equal(t, int64(1), successCount)
}

func TestUserStorage_SetResetToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("reset@example.com", "reset")
	require.NoError(t, s.CreateUser(ctx, user))

	expiresAt := time.Now().Add(24 * time.Hour)
	err := s.SetResetToken(ctx, user.ID, "reset-token-1", expiresAt)
	require.NoError(t, err)

	retrieved, err := s.GetUserByResetToken(ctx, "reset-token-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)

	// Перевыпуск заменяет прежний токен
	err = s.SetResetToken(ctx, user.ID, "reset-token-2", expiresAt)
	require.NoError(t, err)

	_, err = s.GetUserByResetToken(ctx, "reset-token-1", time.Now())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByResetToken(ctx, "reset-token-2", time.Now())
	require.NoError(t, err)

	// Неизвестный пользователь
	err = s.SetResetToken(ctx, "nonexistent", "token", expiresAt)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByResetToken_Expired(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("expired@example.com", "expired")
	require.NoError(t, s.CreateUser(ctx, user))

	expiresAt := time.Now().Add(24 * time.Hour)
	require.NoError(t, s.SetResetToken(ctx, user.ID, "expiring-token", expiresAt))

	// До истечения срока токен находится
	_, err := s.GetUserByResetToken(ctx, "expiring-token", expiresAt.Add(-time.Minute))
	require.NoError(t, err)

	// Ровно в момент истечения и после — нет
	_, err = s.GetUserByResetToken(ctx, "expiring-token", expiresAt)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByResetToken(ctx, "expiring-token", expiresAt.Add(time.Minute))
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_ConsumeResetToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("consume@example.com", "consume")
	require.NoError(t, s.CreateUser(ctx, user))

	expiresAt := time.Now().Add(24 * time.Hour)
	require.NoError(t, s.SetResetToken(ctx, user.ID, "consume-token", expiresAt))

	// Успешное погашение применяет новый хеш и чистит токен
	now := time.Now()
	err := s.ConsumeResetToken(ctx, "consume-token", "newhash", now)
	require.NoError(t, err)

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", retrieved.PasswordHash)
	assert.Nil(t, retrieved.ResetToken)
	assert.Nil(t, retrieved.ResetTokenExpiresAt)
	require.NotNil(t, retrieved.PasswordResetAt)

	// Повторное погашение — ошибка
	err = s.ConsumeResetToken(ctx, "consume-token", "anotherhash", time.Now())
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestUserStorage_ConsumeResetToken_Expired(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("late@example.com", "late")
	require.NoError(t, s.CreateUser(ctx, user))

	expiresAt := time.Now().Add(24 * time.Hour)
	require.NoError(t, s.SetResetToken(ctx, user.ID, "late-token", expiresAt))

	// Попытка после истечения срока
	err := s.ConsumeResetToken(ctx, "late-token", "newhash", expiresAt.Add(time.Minute))
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Пароль не изменился
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
}

func TestUserStorage_ConsumeResetToken_Concurrent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("race2@example.com", "race2")
	require.NoError(t, s.CreateUser(ctx, user))

	expiresAt := time.Now().Add(24 * time.Hour)
	require.NoError(t, s.SetResetToken(ctx, user.ID, "race2-token", expiresAt))

	const goroutines = 10

	var wg sync.WaitGroup
	var successCount int64
	var mu sync.Mutex

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := s.ConsumeResetToken(ctx, "race2-token", fmt.Sprintf("hash-%d", n), time.Now())
			if err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// Ровно одно погашение должно быть успешным
	assert.Equal(t, int64(1), successCount)
}
