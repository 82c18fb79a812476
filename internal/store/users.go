package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/models"
)

// Reserved namespace holding the local credential records, kept apart from
// any user's data namespace.
const (
	authNamespace = "auth"
	KeyUsers      = "users"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username already taken")
)

// UserStore persists the locally registered users through the same key-value
// capability as the financial data.
type UserStore struct {
	kv KeyValueStore
}

// NewUserStore creates a user store over the given key-value capability
func NewUserStore(kv KeyValueStore) *UserStore {
	return &UserStore{kv: kv}
}

func (u *UserStore) load() ([]models.User, error) {
	payload, err := u.kv.Get(authNamespace, KeyUsers)
	if err != nil {
		if err == ErrKeyNotFound {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(payload, &users); err != nil {
		slog.Warn("discarding corrupt user payload", "error", err)
		return []models.User{}, nil
	}
	return users, nil
}

func (u *UserStore) save(users []models.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	return u.kv.Set(authNamespace, KeyUsers, payload)
}

// GetByUsername returns the user with the given username (case-insensitive)
func (u *UserStore) GetByUsername(username string) (*models.User, error) {
	users, err := u.load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends a new user, rejecting duplicate usernames
func (u *UserStore) Create(user models.User) error {
	users, err := u.load()
	if err != nil {
		return err
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, user.Username) {
			return ErrUserAlreadyExists
		}
	}

	return u.save(append(users, user))
}
