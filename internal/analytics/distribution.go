package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Distribution builds per-category totals for one transaction type, for
// proportion displays. Entries are seeded per category of the requested type
// in input order, accumulated from matching transactions, stripped of zero
// values, and sorted descending by value. The sort is stable: equal values
// keep their seed order. Transactions referencing an unseeded category are
// dropped.
func Distribution(transactions []models.Transaction, categories []models.Category, transactionType string) []models.CategorySlice {
	slices := make([]models.CategorySlice, 0)
	index := make(map[string]int)

	for _, category := range categories {
		if category.Type != transactionType {
			continue
		}
		index[category.ID] = len(slices)
		slices = append(slices, models.CategorySlice{
			CategoryID: category.ID,
			Name:       category.Name,
			Value:      decimal.Zero,
		})
	}

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}
		if i, ok := index[tx.CategoryID]; ok {
			slices[i].Value = slices[i].Value.Add(tx.Amount)
		}
	}

	nonZero := slices[:0]
	for _, s := range slices {
		if s.Value.IsPositive() {
			nonZero = append(nonZero, s)
		}
	}
	slices = nonZero

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	return slices
}
