package analytics

import (
	"testing"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_SortsDescendingByValue(t *testing.T) {
	transactions := []models.Transaction{
		newTx("a", mustDate(t, "2024-01-05T10:00:00"), models.TransactionTypeExpense, "food", 40),
		newTx("b", mustDate(t, "2024-01-05T11:00:00"), models.TransactionTypeExpense, "housing", 800),
	}

	slices := Distribution(transactions, testCategories(), models.TransactionTypeExpense)

	require.Len(t, slices, 2)
	assert.Equal(t, "housing", slices[0].CategoryID)
	assert.Equal(t, "food", slices[1].CategoryID)
	assert.Equal(t, "Housing", slices[0].Name)
}

func TestDistribution_ZeroValueCategoriesAreDropped(t *testing.T) {
	transactions := []models.Transaction{
		newTx("a", mustDate(t, "2024-01-05T10:00:00"), models.TransactionTypeExpense, "housing", 50),
	}

	slices := Distribution(transactions, testCategories(), models.TransactionTypeExpense)

	require.Len(t, slices, 1)
	assert.Equal(t, "housing", slices[0].CategoryID)
}

func TestDistribution_TiesKeepCategoryOrder(t *testing.T) {
	transactions := []models.Transaction{
		newTx("a", mustDate(t, "2024-01-05T10:00:00"), models.TransactionTypeExpense, "housing", 30),
		newTx("b", mustDate(t, "2024-01-05T11:00:00"), models.TransactionTypeExpense, "food", 30),
	}

	// food precedes housing in the category collection, so the tie resolves
	// in that order regardless of transaction order.
	slices := Distribution(transactions, testCategories(), models.TransactionTypeExpense)

	require.Len(t, slices, 2)
	assert.Equal(t, "food", slices[0].CategoryID)
	assert.Equal(t, "housing", slices[1].CategoryID)
}

func TestDistribution_OnlyRequestedTypeContributes(t *testing.T) {
	transactions := []models.Transaction{
		newTx("a", mustDate(t, "2024-01-05T10:00:00"), models.TransactionTypeIncome, "salary", 100),
		newTx("b", mustDate(t, "2024-01-05T11:00:00"), models.TransactionTypeExpense, "food", 40),
	}

	slices := Distribution(transactions, testCategories(), models.TransactionTypeIncome)

	require.Len(t, slices, 1)
	assert.Equal(t, "salary", slices[0].CategoryID)
	assert.True(t, slices[0].Value.Equal(decimal.NewFromInt(100)))
}

func TestDistribution_UnknownCategoryIsDropped(t *testing.T) {
	transactions := []models.Transaction{
		newTx("a", mustDate(t, "2024-01-05T10:00:00"), models.TransactionTypeExpense, "deleted-category", 75),
	}

	slices := Distribution(transactions, testCategories(), models.TransactionTypeExpense)

	assert.Empty(t, slices)
}

func TestDistribution_EmptyInputYieldsEmptyResult(t *testing.T) {
	slices := Distribution(nil, testCategories(), models.TransactionTypeExpense)

	assert.Empty(t, slices)
}
