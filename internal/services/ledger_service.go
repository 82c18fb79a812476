package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryUnknownType = errors.New("category type must be income or expense")
)

type ledgerService struct {
	records *store.RecordStore
	metrics MetricsRecorderInterface
}

// NewLedgerService creates the orchestration layer between the record store
// and the pure aggregation core. Every method is scoped to one user's
// namespace; the service holds no per-user state.
func NewLedgerService(records *store.RecordStore, metrics MetricsRecorderInterface) LedgerServiceInterface {
	return &ledgerService{
		records: records,
		metrics: metrics,
	}
}

func (s *ledgerService) ListTransactions(userID string, criteria models.FilterCriteria) ([]models.Transaction, error) {
	transactions, err := s.records.LoadTransactions(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}
	return analytics.Filter(transactions, criteria), nil
}

func (s *ledgerService) CreateTransaction(userID string, tx models.Transaction) (*models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = models.NewTransactionID()
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	transactions, err := s.records.LoadTransactions(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}

	transactions = append(transactions, tx)
	if err := s.records.SaveTransactions(userID, transactions); err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}

	s.metrics.RecordTransactionWrite("create", tx.Type)
	slog.Info("transaction created",
		"user_id", userID,
		"transaction_id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount.String())

	return &tx, nil
}

func (s *ledgerService) UpdateTransaction(userID string, tx models.Transaction) (*models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	transactions, err := s.records.LoadTransactions(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}

	found := false
	for i := range transactions {
		if transactions[i].ID == tx.ID {
			transactions[i] = tx
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTransactionNotFound
	}

	if err := s.records.SaveTransactions(userID, transactions); err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}

	s.metrics.RecordTransactionWrite("update", tx.Type)
	slog.Info("transaction updated", "user_id", userID, "transaction_id", tx.ID)

	return &tx, nil
}

func (s *ledgerService) DeleteTransaction(userID, transactionID string) error {
	transactions, err := s.records.LoadTransactions(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return err
	}

	remaining := make([]models.Transaction, 0, len(transactions))
	var deleted *models.Transaction
	for i := range transactions {
		if transactions[i].ID == transactionID {
			deleted = &transactions[i]
			continue
		}
		remaining = append(remaining, transactions[i])
	}
	if deleted == nil {
		return ErrTransactionNotFound
	}

	if err := s.records.SaveTransactions(userID, remaining); err != nil {
		s.metrics.RecordStoreError()
		return err
	}

	s.metrics.RecordTransactionWrite("delete", deleted.Type)
	slog.Info("transaction deleted", "user_id", userID, "transaction_id", transactionID)

	return nil
}

func (s *ledgerService) ListCategories(userID string) ([]models.Category, error) {
	categories, err := s.records.LoadCategories(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, err
	}
	return categories, nil
}

func (s *ledgerService) ReplaceCategories(userID string, categories []models.Category) error {
	for _, category := range categories {
		if !models.IsValidTransactionType(category.Type) {
			return fmt.Errorf("%w: %q", ErrCategoryUnknownType, category.Type)
		}
	}

	if err := s.records.SaveCategories(userID, categories); err != nil {
		s.metrics.RecordStoreError()
		return err
	}

	slog.Info("categories replaced", "user_id", userID, "count", len(categories))
	return nil
}

// loadFiltered is the shared entry point for the three analytics views so all
// of them observe identical filter semantics.
func (s *ledgerService) loadFiltered(userID string, criteria models.FilterCriteria) ([]models.Transaction, []models.Category, error) {
	transactions, err := s.records.LoadTransactions(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, nil, err
	}

	categories, err := s.records.LoadCategories(userID)
	if err != nil {
		s.metrics.RecordStoreError()
		return nil, nil, err
	}

	return analytics.Filter(transactions, criteria), categories, nil
}

func (s *ledgerService) Summary(userID string, criteria models.FilterCriteria) (models.TransactionSummary, error) {
	start := time.Now()
	s.metrics.RecordAnalyticsRequest("summary")

	filtered, categories, err := s.loadFiltered(userID, criteria)
	if err != nil {
		return models.TransactionSummary{}, err
	}

	summary := analytics.Summarize(filtered, categories)
	s.metrics.ObserveAnalyticsDuration("summary", time.Since(start))
	return summary, nil
}

func (s *ledgerService) DailySeries(userID string, criteria models.FilterCriteria) ([]models.DailyBucket, error) {
	start := time.Now()
	s.metrics.RecordAnalyticsRequest("daily")

	filtered, _, err := s.loadFiltered(userID, criteria)
	if err != nil {
		return nil, err
	}

	buckets := analytics.DailySeries(filtered, criteria.DateRange)
	s.metrics.ObserveAnalyticsDuration("daily", time.Since(start))
	return buckets, nil
}

func (s *ledgerService) Distribution(userID string, criteria models.FilterCriteria, transactionType string) ([]models.CategorySlice, error) {
	if !models.IsValidTransactionType(transactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	start := time.Now()
	s.metrics.RecordAnalyticsRequest("distribution")

	filtered, categories, err := s.loadFiltered(userID, criteria)
	if err != nil {
		return nil, err
	}

	slices := analytics.Distribution(filtered, categories, transactionType)
	s.metrics.ObserveAnalyticsDuration("distribution", time.Since(start))
	return slices, nil
}
