package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/google/uuid"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = fmt.Errorf("username must be %d-%d characters", MinUsernameLength, MaxUsernameLength)
)

type authService struct {
	users           *store.UserStore
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
}

// NewAuthService creates the local username/password authentication service.
// Credentials live in the record store's reserved auth namespace; there is no
// external identity provider.
func NewAuthService(users *store.UserStore, passwordService PasswordServiceInterface, metrics MetricsRecorderInterface) AuthServiceInterface {
	return &authService{
		users:           users,
		passwordService: passwordService,
		metrics:         metrics,
	}
}

func (s *authService) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return nil, ErrInvalidUsername
	}

	if err := s.passwordService.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			s.metrics.RecordAuthEvent("register", "duplicate")
			return nil, ErrUsernameTaken
		}
		s.metrics.RecordStoreError()
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	s.metrics.RecordAuthEvent("register", "success")
	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	return &user, nil
}

func (s *authService) Login(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.metrics.RecordAuthEvent("login", "unknown_user")
			return nil, ErrInvalidCredentials
		}
		s.metrics.RecordStoreError()
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		s.metrics.RecordAuthEvent("login", "bad_password")
		slog.Warn("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	s.metrics.RecordAuthEvent("login", "success")
	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return user, nil
}
