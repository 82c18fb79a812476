package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest contains the payload for creating or updating a
// transaction. The id is taken from the URL on update and server-assigned
// on create.
type TransactionRequest struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Date       time.Time       `json:"date" validate:"required"`
	Type       string          `json:"type" validate:"required,oneof=income expense"`
	CategoryID string          `json:"categoryId" validate:"required"`
	Notes      string          `json:"notes"`
}

// CategoryRequest is one category in a collection replacement
type CategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=income expense"`
	Icon string `json:"icon"`
}

// ReplaceCategoriesRequest replaces the user's full category collection
type ReplaceCategoriesRequest struct {
	Categories []CategoryRequest `json:"categories" validate:"required,min=1,dive"`
}

// SeedRequest controls the development sample-data generator
type SeedRequest struct {
	Days  int `json:"days" validate:"omitempty,min=1,max=365"`
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
}
