package models

import "time"

// User представляет учетную запись пользователя в системе
type User struct {
	ID                  string     `json:"id"`                          // UUID пользователя
	Email               string     `json:"email"`                       // уникальный email
	Username            string     `json:"username"`                    // отображаемое имя, уникальность не требуется
	PasswordHash        string     `json:"-"`                           // bcrypt хеш пароля, наружу не отдается
	VerificationToken   *string    `json:"-"`                           // one-time токен подтверждения email (hex, 80 символов)
	VerifiedAt          *time.Time `json:"verified_at,omitempty"`       // время подтверждения email
	ResetToken          *string    `json:"-"`                           // one-time токен сброса пароля
	ResetTokenExpiresAt *time.Time `json:"-"`                           // абсолютный срок действия reset токена
	PasswordResetAt     *time.Time `json:"password_reset_at,omitempty"` // время последнего успешного сброса пароля
	CreatedAt           time.Time  `json:"created_at"`                  // время создания
	UpdatedAt           time.Time  `json:"updated_at"`                  // время последнего обновления
}

// IsVerified сообщает, подтвержден ли аккаунт.
// Успешный сброс пароля также подтверждает владение email.
func (u *User) IsVerified() bool {
	return u.VerifiedAt != nil || u.PasswordResetAt != nil
}
