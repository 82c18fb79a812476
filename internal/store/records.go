package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
)

// Fixed key names within a user's namespace
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
)

// RecordStore loads and saves the per-user collections over an injected
// KeyValueStore. Missing or corrupt payloads degrade to defaults (empty
// transactions, the fixed default category set) and are never surfaced as
// errors to the aggregation core; only genuine storage failures propagate.
type RecordStore struct {
	kv KeyValueStore
}

// NewRecordStore creates a record store over the given key-value capability
func NewRecordStore(kv KeyValueStore) *RecordStore {
	return &RecordStore{kv: kv}
}

// LoadTransactions returns the user's transactions, or an empty collection
// when nothing has been stored or the payload is unreadable.
func (r *RecordStore) LoadTransactions(userID string) ([]models.Transaction, error) {
	payload, err := r.kv.Get(userID, KeyTransactions)
	if err != nil {
		if err == ErrKeyNotFound {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(payload, &transactions); err != nil {
		slog.Warn("discarding corrupt transaction payload",
			"user_id", userID,
			"error", err)
		return []models.Transaction{}, nil
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return transactions, nil
}

// SaveTransactions persists the user's full transaction collection
func (r *RecordStore) SaveTransactions(userID string, transactions []models.Transaction) error {
	payload, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return r.kv.Set(userID, KeyTransactions, payload)
}

// LoadCategories returns the user's categories, falling back to the default
// set when nothing has been stored, the payload is unreadable, or the stored
// collection is empty.
func (r *RecordStore) LoadCategories(userID string) ([]models.Category, error) {
	payload, err := r.kv.Get(userID, KeyCategories)
	if err != nil {
		if err == ErrKeyNotFound {
			return models.DefaultCategories(), nil
		}
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		slog.Warn("discarding corrupt category payload",
			"user_id", userID,
			"error", err)
		return models.DefaultCategories(), nil
	}
	if len(categories) == 0 {
		return models.DefaultCategories(), nil
	}

	return categories, nil
}

// SaveCategories persists the user's full category collection
func (r *RecordStore) SaveCategories(userID string, categories []models.Category) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	return r.kv.Set(userID, KeyCategories, payload)
}
