package services

import (
	"time"

	"fintrack/internal/models"
)

// PasswordServiceInterface handles password hashing and policy checks
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
}

// TokenServiceInterface issues and validates session tokens
type TokenServiceInterface interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuthServiceInterface implements the local username/password scheme
type AuthServiceInterface interface {
	Register(username, password string) (*models.User, error)
	Login(username, password string) (*models.User, error)
}

// LedgerServiceInterface orchestrates record storage and the aggregation core
// on behalf of one authenticated user per call.
type LedgerServiceInterface interface {
	ListTransactions(userID string, criteria models.FilterCriteria) ([]models.Transaction, error)
	CreateTransaction(userID string, tx models.Transaction) (*models.Transaction, error)
	UpdateTransaction(userID string, tx models.Transaction) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error

	ListCategories(userID string) ([]models.Category, error)
	ReplaceCategories(userID string, categories []models.Category) error

	Summary(userID string, criteria models.FilterCriteria) (models.TransactionSummary, error)
	DailySeries(userID string, criteria models.FilterCriteria) ([]models.DailyBucket, error)
	Distribution(userID string, criteria models.FilterCriteria, transactionType string) ([]models.CategorySlice, error)
}

// SampleDataServiceInterface seeds realistic development data
type SampleDataServiceInterface interface {
	Seed(userID string, days, count int) ([]models.Transaction, error)
}

// MetricsRecorderInterface records service-level metrics
type MetricsRecorderInterface interface {
	RecordTransactionWrite(operation, transactionType string)
	RecordAnalyticsRequest(view string)
	ObserveAnalyticsDuration(view string, duration time.Duration)
	RecordAuthEvent(event, outcome string)
	RecordStoreError()
}
