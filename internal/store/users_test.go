package store

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(username string) models.User {
	return models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "$2a$12$fakehash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserStore_GetByUsernameMissing(t *testing.T) {
	users := NewUserStore(NewMemoryStore())

	_, err := users.GetByUsername("nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_CreateThenGet(t *testing.T) {
	users := NewUserStore(NewMemoryStore())

	created := newTestUser("alice")
	require.NoError(t, users.Create(created))

	found, err := users.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "alice", found.Username)
}

func TestUserStore_UsernameLookupIsCaseInsensitive(t *testing.T) {
	users := NewUserStore(NewMemoryStore())

	require.NoError(t, users.Create(newTestUser("Alice")))

	found, err := users.GetByUsername("ALICE")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Username)
}

func TestUserStore_CreateRejectsDuplicateUsername(t *testing.T) {
	users := NewUserStore(NewMemoryStore())

	require.NoError(t, users.Create(newTestUser("alice")))

	err := users.Create(newTestUser("ALICE"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserStore_CredentialsLiveOutsideUserNamespaces(t *testing.T) {
	kv := NewMemoryStore()
	users := NewUserStore(kv)
	records := NewRecordStore(kv)

	user := newTestUser("alice")
	require.NoError(t, users.Create(user))

	// The user's own data namespace must not see the credential payload.
	transactions, err := records.LoadTransactions(user.ID.String())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
