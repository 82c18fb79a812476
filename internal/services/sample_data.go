package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	defaultSeedDays  = 30
	defaultSeedCount = 60
	maxSeedCount     = 1000
)

// amountRange bounds the generated amount for one category
type amountRange struct {
	min float64
	max float64
}

// Plausible magnitudes per default category id; anything unlisted falls back
// to a small expense-sized range.
var seedAmountRanges = map[string]amountRange{
	"salary":         {3000, 8000},
	"bonus":          {200, 2000},
	"investment":     {50, 1500},
	"gift":           {20, 500},
	"other-income":   {10, 400},
	"food":           {5, 120},
	"shopping":       {10, 400},
	"housing":        {500, 2500},
	"transportation": {2, 80},
	"entertainment":  {8, 150},
	"medical":        {15, 600},
	"education":      {20, 800},
	"utilities":      {30, 300},
}

type sampleDataService struct {
	ledger LedgerServiceInterface
	faker  *gofakeit.Faker
}

// NewSampleDataService creates a generator that seeds realistic transactions
// for development and demos.
func NewSampleDataService(ledger LedgerServiceInterface) SampleDataServiceInterface {
	return &sampleDataService{
		ledger: ledger,
		faker:  gofakeit.New(0),
	}
}

func (s *sampleDataService) Seed(userID string, days, count int) ([]models.Transaction, error) {
	if days <= 0 {
		days = defaultSeedDays
	}
	if count <= 0 {
		count = defaultSeedCount
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	categories, err := s.ledger.ListCategories(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for seeding: %w", err)
	}
	if len(categories) == 0 {
		categories = models.DefaultCategories()
	}

	now := time.Now()
	created := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		category := categories[s.faker.Number(0, len(categories)-1)]

		bounds, ok := seedAmountRanges[category.ID]
		if !ok {
			bounds = amountRange{5, 200}
		}

		date := now.AddDate(0, 0, -s.faker.Number(0, days-1))
		date = time.Date(date.Year(), date.Month(), date.Day(),
			s.faker.Number(6, 22), s.faker.Number(0, 59), 0, 0, now.Location())

		tx := models.Transaction{
			Amount:     decimal.NewFromFloat(s.faker.Price(bounds.min, bounds.max)),
			Date:       date,
			Type:       category.Type,
			CategoryID: category.ID,
			Notes:      s.faker.Sentence(4),
		}

		saved, err := s.ledger.CreateTransaction(userID, tx)
		if err != nil {
			return created, fmt.Errorf("failed to seed transaction: %w", err)
		}
		created = append(created, *saved)
	}

	slog.Info("sample data seeded", "user_id", userID, "count", len(created), "days", days)
	return created, nil
}
