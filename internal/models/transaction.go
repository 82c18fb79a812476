package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction represents a single recorded income or expense event.
// The sign of the amount is implied by Type; Amount itself is always positive.
type Transaction struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Type       string          `json:"type"`
	CategoryID string          `json:"categoryId"`
	Notes      string          `json:"notes"`
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.CategoryID == "" {
		return ErrMissingCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true if the transaction is an income event
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction is an expense event
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// NewTransactionID generates a unique transaction identifier
func NewTransactionID() string {
	return uuid.New().String()
}
