package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	userRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/user"
	"github.com/m04kA/WJL-TicketService/internal/service/auth/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

// Service сервис входа и проверки сессий
type Service struct {
	userRepo     UserRepository
	sessions     SessionManager
	secret       []byte
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	userRepo UserRepository,
	sessions SessionManager,
	secret string,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		sessions:     sessions,
		secret:       []byte(secret),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login проверяет пароль и открывает сессию с пустым инвентарём
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	// 1. Ищем пользователя
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		s.logger.Warn("Login: user id=%d is inactive", user.ID)
		return nil, ErrUserInactive
	}

	// 3. Открываем сессию и выпускаем токен
	sess := s.sessions.Create(ctx, user)
	token, expiresAt, err := s.issueToken(user.ID, sess.ID(), s.timeProvider.Now())
	if err != nil {
		s.sessions.Delete(ctx, sess.ID())
		s.logger.Error("Login: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d opened session id=%s", user.ID, sess.ID())

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		IdleLimit: int(s.sessions.Timeout().Seconds()),
		User:      models.FromRecord(sess.Record()),
	}, nil
}

// Authenticate проверяет токен и продлевает сессию
func (s *Service) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	parsed, err := s.parseToken(token)
	if err != nil {
		s.logger.Warn("Authenticate: rejected token: %v", err)
		return nil, ErrInvalidToken
	}

	sess, err := s.sessions.Get(ctx, parsed.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionExpired):
			return nil, ErrSessionExpired
		case errors.Is(err, session.ErrSessionNotFound):
			return nil, ErrInvalidToken
		}
		s.logger.Error("Authenticate: failed to load session id=%s: %v", parsed.SessionID, err)
		return nil, fmt.Errorf("%w: Authenticate - %v", ErrInternal, err)
	}

	if parsed.Subject != strconv.FormatInt(sess.Record().UserID, 10) {
		s.logger.Warn("Authenticate: token subject %s does not own session id=%s", parsed.Subject, parsed.SessionID)
		return nil, ErrInvalidToken
	}

	return sess, nil
}

// Logout закрывает сессию
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(ctx, sessionID)
	s.logger.Info("Logout: session id=%s closed", sessionID)
}

// Me данные пользователя сессии
func (s *Service) Me(sess *session.Session) models.UserResponse {
	return models.FromRecord(sess.Record())
}

// EnsureAdmin создает администратора, если пользователей ещё нет
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - count users: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		s.logger.Warn("EnsureAdmin: no users and no bootstrap admin configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - hash password: %v", ErrInternal, err)
	}

	admin, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Permissions:  domain.DefaultPermissions(domain.RoleAdmin),
		Active:       true,
	})
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: bootstrap admin id=%d created", admin.ID)
	return nil
}
