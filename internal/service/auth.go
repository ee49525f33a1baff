package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/session"
	"github.com/sirupsen/logrus"
)

// Роли фиксированной таблицы пользователей
const (
	RoleAdmin   = "admin"
	RoleCommand = "command"
	RoleField   = "field"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService определяет контракт аутентификации по фиксированной таблице ролей
type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.Session, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    map[string]credentials
	sessions session.Store
	logger   *logrus.Logger
}

type credentials struct {
	password string
	role     string
}

func NewAuthService(cfg *config.Config, sessions session.Store, logger *logrus.Logger) AuthService {
	return &authService{
		users: map[string]credentials{
			"admin":   {password: cfg.AdminPass, role: RoleAdmin},
			"command": {password: cfg.CommandPass, role: RoleCommand},
			"field":   {password: cfg.FieldPass, role: RoleField},
		},
		sessions: sessions,
		logger:   logger,
	}
}

// Login проверяет учетные данные и создает сессию
func (s *authService) Login(ctx context.Context, username, password string) (*session.Session, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, ok := s.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(user.password), []byte(password)) != 1 {
		log.Warn("Invalid login attempt")
		return nil, "", ErrInvalidCredentials
	}

	sess := session.Session{Username: username, Role: user.role}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		log.WithError(err).Error("Failed to create session")
		return nil, "", fmt.Errorf("service: could not create session: %w", err)
	}

	log.WithField("role", user.role).Info("User logged in successfully")
	return &sess, token, nil
}

// Logout удаляет сессию, идемпотентен
func (s *authService) Logout(ctx context.Context, token string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
	})

	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		log.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}

	log.Info("User logged out")
	return nil
}
