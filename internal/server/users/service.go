package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/accounts/internal/models"
	"github.com/iudanet/accounts/internal/server/mail"
	"github.com/iudanet/accounts/internal/server/storage"
	"github.com/iudanet/accounts/internal/server/tokens"
)

// ErrInvalidCredentials indicates failed authentication. The message
// never reveals whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("email or password is incorrect")

// bcryptCost стоимость bcrypt хеширования паролей
const bcryptCost = 10

// Service оркестрирует операции над учетными записями: регистрацию,
// аутентификацию, подтверждение email, сброс пароля и CRUD.
// Письма отправляются best-effort: неудачная отправка логируется,
// но не откатывает уже зафиксированное изменение состояния.
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
	engine *tokens.Engine
	sender mail.Sender
	now    func() time.Time
}

// UpdateParams описывает частичное обновление пользователя.
// nil-поля остаются без изменений.
type UpdateParams struct {
	Email    *string
	Username *string
	Password *string
}

// NewService создает сервис учетных записей
func NewService(logger *slog.Logger, users storage.UserStorage, engine *tokens.Engine, sender mail.Sender) *Service {
	return &Service{
		logger: logger,
		users:  users,
		engine: engine,
		sender: sender,
		now:    time.Now,
	}
}

// Register создает новую учетную запись и отправляет verification письмо.
// Если email уже занят, ответ неотличим от успешной регистрации: вместо
// ошибки владельцу адреса уходит письмо "already registered". Это
// осознанная защита от перебора адресов (enumeration), а не упущение.
func (s *Service) Register(ctx context.Context, email, username, password string) error {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	if existing != nil {
		s.logger.InfoContext(ctx, "registration with existing email", slog.String("user_id", existing.ID))
		if err := s.sender.SendAlreadyRegisteredEmail(email); err != nil {
			s.logger.ErrorContext(ctx, "failed to send already-registered email", slog.Any("error", err))
		}
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Гонка двух одновременных регистраций: ведем себя как на
		// обычном duplicate пути, наружу разницы нет
		if errors.Is(err, storage.ErrEmailTaken) {
			if err := s.sender.SendAlreadyRegisteredEmail(email); err != nil {
				s.logger.ErrorContext(ctx, "failed to send already-registered email", slog.Any("error", err))
			}
			return nil
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.engine.IssueVerificationToken(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	if err := s.sender.SendVerificationEmail(user.Email, user.Username, token); err != nil {
		s.logger.ErrorContext(ctx, "failed to send verification email",
			slog.String("user_id", user.ID), slog.Any("error", err))
	}

	return nil
}

// Authenticate проверяет пару email/пароль и выпускает session токен.
// Возвращает ErrInvalidCredentials как для неизвестного email, так и для
// неверного пароля.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.engine.IssueSessionToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.InfoContext(ctx, "user authenticated", slog.String("user_id", user.ID))

	return user, token, nil
}

// ForgotPassword выпускает reset токен и отправляет письмо со ссылкой.
// Для неизвестного email возвращает успех без каких-либо действий,
// чтобы не раскрывать существование адреса.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, _, err := s.engine.IssueResetToken(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	s.logger.InfoContext(ctx, "reset token issued", slog.String("user_id", user.ID))

	if err := s.sender.SendPasswordResetEmail(user.Email, user.Username, token); err != nil {
		s.logger.ErrorContext(ctx, "failed to send password reset email",
			slog.String("user_id", user.ID), slog.Any("error", err))
	}

	return nil
}

// ValidateResetToken проверяет reset токен, не используя его.
// Возвращает tokens.ErrInvalidToken для неизвестного или истекшего токена.
func (s *Service) ValidateResetToken(ctx context.Context, token string) error {
	_, err := s.engine.ValidateResetToken(ctx, token)
	return err
}

// ResetPassword устанавливает новый пароль по живому reset токену.
// Токен сгорает вместе с применением нового хеша; повторная попытка
// вернет tokens.ErrInvalidToken.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.engine.ConsumeResetToken(ctx, token, string(hash)); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "password reset completed")

	return nil
}

// VerifyEmail подтверждает email по verification токену.
// Возвращает tokens.ErrInvalidToken для неизвестного или уже
// использованного токена.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.engine.ConsumeVerificationToken(ctx, token)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "email verified", slog.String("user_id", user.ID))

	return nil
}

// GetByID возвращает пользователя по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}

// GetAll возвращает всех пользователей
func (s *Service) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// Update применяет частичное обновление. Смена email на адрес другого
// пользователя возвращает storage.ErrEmailTaken; смена на собственный
// текущий адрес проходит успешно.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && *params.Email != user.Email {
		other, err := s.users.GetUserByEmail(ctx, *params.Email)
		if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if other != nil {
			return nil, storage.ErrEmailTaken
		}
		user.Email = *params.Email
	}

	if params.Username != nil {
		user.Username = *params.Username
	}

	if params.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = s.now()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user updated", slog.String("user_id", user.ID))

	return user, nil
}

// Delete безвозвратно удаляет пользователя
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", id))

	return nil
}
