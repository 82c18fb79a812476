package store

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_LoadTransactionsMissingYieldsEmpty(t *testing.T) {
	records := NewRecordStore(NewMemoryStore())

	transactions, err := records.LoadTransactions("user-1")

	require.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestRecordStore_SaveThenLoadTransactions(t *testing.T) {
	records := NewRecordStore(NewMemoryStore())

	saved := []models.Transaction{
		{
			ID:         "tx-1",
			Amount:     decimal.NewFromFloat(42.50),
			Date:       time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
			Type:       models.TransactionTypeExpense,
			CategoryID: "food",
			Notes:      "lunch",
		},
	}
	require.NoError(t, records.SaveTransactions("user-1", saved))

	loaded, err := records.LoadTransactions("user-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "tx-1", loaded[0].ID)
	assert.Equal(t, "food", loaded[0].CategoryID)
	assert.True(t, loaded[0].Amount.Equal(decimal.NewFromFloat(42.50)))
}

func TestRecordStore_CorruptTransactionPayloadYieldsEmpty(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set("user-1", KeyTransactions, []byte(`{not json`)))
	records := NewRecordStore(kv)

	transactions, err := records.LoadTransactions("user-1")

	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRecordStore_LoadCategoriesMissingYieldsDefaults(t *testing.T) {
	records := NewRecordStore(NewMemoryStore())

	categories, err := records.LoadCategories("user-1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)
}

func TestRecordStore_CorruptCategoryPayloadYieldsDefaults(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set("user-1", KeyCategories, []byte(`xxx`)))
	records := NewRecordStore(kv)

	categories, err := records.LoadCategories("user-1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)
}

func TestRecordStore_EmptyStoredCategoriesYieldDefaults(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set("user-1", KeyCategories, []byte(`[]`)))
	records := NewRecordStore(kv)

	categories, err := records.LoadCategories("user-1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), categories)
}

func TestRecordStore_SaveThenLoadCategories(t *testing.T) {
	records := NewRecordStore(NewMemoryStore())

	saved := []models.Category{
		{ID: "coffee", Name: "Coffee", Type: models.TransactionTypeExpense, Icon: "cup"},
	}
	require.NoError(t, records.SaveCategories("user-1", saved))

	loaded, err := records.LoadCategories("user-1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestRecordStore_UsersAreIsolated(t *testing.T) {
	records := NewRecordStore(NewMemoryStore())

	require.NoError(t, records.SaveTransactions("user-1", []models.Transaction{
		{ID: "tx-1", Amount: decimal.NewFromInt(10), Type: models.TransactionTypeExpense, CategoryID: "food", Date: time.Now()},
	}))

	other, err := records.LoadTransactions("user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
