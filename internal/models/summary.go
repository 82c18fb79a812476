package models

import "github.com/shopspring/decimal"

// CategoryAmount is one per-category total inside a TransactionSummary
type CategoryAmount struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
}

// TransactionSummary contains aggregated totals for a transaction set.
// CategorySummary carries one entry per known category, zero entries included,
// in category iteration order.
type TransactionSummary struct {
	TotalIncome     decimal.Decimal  `json:"totalIncome"`
	TotalExpense    decimal.Decimal  `json:"totalExpense"`
	NetAmount       decimal.Decimal  `json:"netAmount"`
	CategorySummary []CategoryAmount `json:"categorySummary"`
}

// DailyBucket holds summed income and expense for one calendar day
type DailyBucket struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategorySlice is one per-category total for a single transaction type,
// used for proportion displays.
type CategorySlice struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
}
