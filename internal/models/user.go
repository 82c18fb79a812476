package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a locally registered account. Users are persisted through the same
// record store as the financial data, under a reserved namespace; there is no
// server-side identity provider. API responses never expose this struct
// directly (see dto.UserProfileResponse), so the hash may round-trip through
// the stored JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
