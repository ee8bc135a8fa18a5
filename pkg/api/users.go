package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Username string `json:"username"` // отображаемое имя
	Password string `json:"password"` // пароль в открытом виде (только в запросе)
}

// MessageResponse представляет ответ, содержащий только сообщение.
// Используется операциями, которые намеренно не раскрывают деталей
// (регистрация, forgot-password и т.п.).
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthenticateRequest представляет запрос на аутентификацию
type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateResponse представляет ответ с профилем и session токеном
type AuthenticateResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"` // JWT session token (7 дней)
}

// VerifyEmailRequest представляет запрос на подтверждение email
type VerifyEmailRequest struct {
	Token string `json:"token"` // verification токен из письма
}

// ForgotPasswordRequest представляет запрос на сброс пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ValidateResetTokenRequest представляет запрос на проверку reset токена
// без его использования
type ValidateResetTokenRequest struct {
	Token string `json:"token"`
}

// ResetPasswordRequest представляет запрос на установку нового пароля
type ResetPasswordRequest struct {
	Token    string `json:"token"`    // reset токен из письма
	Password string `json:"password"` // новый пароль
}

// UpdateUserRequest представляет частичное обновление пользователя.
// nil-поля не изменяются; неизвестные поля отклоняются на границе API.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// User представляет профиль пользователя в ответах API.
// Хеш пароля и живые токены в этот тип не попадают.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	IsVerified      bool       `json:"is_verified"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	PasswordResetAt *time.Time `json:"password_reset_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UsersResponse представляет список профилей
type UsersResponse struct {
	Users []User `json:"users"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
