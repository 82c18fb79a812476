package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// DailySeries buckets transactions by calendar day across the given range.
// One zero-seeded bucket is produced for every day from From through To
// inclusive, in ascending order, so charting callers see gaps as explicit
// zero-activity days. To defaults to today when unset; without From there is
// no computable range and the result is empty.
//
// Transactions falling outside the seeded days are dropped. Callers are
// expected to have filtered to the same range already, so the drop is a
// defensive no-op rather than the primary filter.
func DailySeries(transactions []models.Transaction, r models.DateRange) []models.DailyBucket {
	if r.From == nil {
		return nil
	}

	end := time.Now()
	if r.To != nil {
		end = *r.To
	}

	lastDay := startOfDay(end)
	buckets := make([]models.DailyBucket, 0)
	index := make(map[string]int)

	for day := startOfDay(*r.From); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := DayKey(day)
		index[key] = len(buckets)
		buckets = append(buckets, models.DailyBucket{
			Date:    key,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	for _, tx := range transactions {
		i, ok := index[DayKey(tx.Date)]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}

	return buckets
}
