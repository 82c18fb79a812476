package analytics

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Summarize aggregates a transaction set into type totals and per-category
// amounts. CategorySummary is pre-seeded with a zero entry for every known
// category, in input order, so categories without activity still appear.
// A transaction whose CategoryID matches no known category contributes to the
// type totals but is excluded from CategorySummary.
func Summarize(transactions []models.Transaction, categories []models.Category) models.TransactionSummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	categorySummary := make([]models.CategoryAmount, len(categories))
	index := make(map[string]int, len(categories))
	for i, category := range categories {
		categorySummary[i] = models.CategoryAmount{CategoryID: category.ID, Amount: decimal.Zero}
		index[category.ID] = i
	}

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			totalExpense = totalExpense.Add(tx.Amount)
		}

		if i, ok := index[tx.CategoryID]; ok {
			categorySummary[i].Amount = categorySummary[i].Amount.Add(tx.Amount)
		}
	}

	return models.TransactionSummary{
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetAmount:       totalIncome.Sub(totalExpense),
		CategorySummary: categorySummary,
	}
}
