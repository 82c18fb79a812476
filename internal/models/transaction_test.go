package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:         NewTransactionID(),
		Amount:     decimal.NewFromFloat(42.50),
		Date:       time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
		Type:       TransactionTypeExpense,
		CategoryID: "food",
	}
}

func TestTransactionValidate_Valid(t *testing.T) {
	tx := validTransaction()
	assert.NoError(t, tx.Validate())
}

func TestTransactionValidate_InvalidType(t *testing.T) {
	tx := validTransaction()
	tx.Type = "transfer"
	assert.ErrorIs(t, tx.Validate(), ErrInvalidTransactionType)
}

func TestTransactionValidate_NonPositiveAmount(t *testing.T) {
	tx := validTransaction()
	tx.Amount = decimal.Zero
	assert.ErrorIs(t, tx.Validate(), ErrInvalidAmount)

	tx.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, tx.Validate(), ErrInvalidAmount)
}

func TestTransactionValidate_MissingCategory(t *testing.T) {
	tx := validTransaction()
	tx.CategoryID = ""
	assert.ErrorIs(t, tx.Validate(), ErrMissingCategory)
}

func TestTransactionValidate_MissingDate(t *testing.T) {
	tx := validTransaction()
	tx.Date = time.Time{}
	assert.ErrorIs(t, tx.Validate(), ErrMissingDate)
}

func TestTransactionTypePredicates(t *testing.T) {
	income := validTransaction()
	income.Type = TransactionTypeIncome
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())

	expense := validTransaction()
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Income"))
}

func TestNewTransactionID_IsUUID(t *testing.T) {
	id := NewTransactionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewTransactionID())
}
