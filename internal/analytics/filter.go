// Package analytics implements the pure aggregation and filtering engine for
// the tracker. Every function here is a side-effect-free transformation over
// immutable inputs: no I/O, no shared state, safe to call on every request.
//
// Dates are parsed exactly once, at the record store boundary; this package
// consumes time.Time values only. Amount and date validity are the caller's
// responsibility (form-level validation); these functions do not re-validate.
package analytics

import "fintrack/internal/models"

// Filter narrows a transaction set by the given criteria. All three axes must
// pass (logical AND); an empty Types or CategoryIDs slice leaves that axis
// unrestricted. Input order is preserved and the input slice is not mutated.
func Filter(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if !matchesDateRange(tx, criteria.DateRange) {
			continue
		}
		if !matchesTypes(tx, criteria.Types) {
			continue
		}
		if !matchesCategories(tx, criteria.CategoryIDs) {
			continue
		}
		result = append(result, tx)
	}

	return result
}

// matchesDateRange applies the asymmetric range contract: From is an exact
// instant, To is inclusive through the end of its calendar day.
func matchesDateRange(tx models.Transaction, r models.DateRange) bool {
	if r.From != nil && tx.Date.Before(*r.From) {
		return false
	}
	if r.To != nil && tx.Date.After(endOfDay(*r.To)) {
		return false
	}
	return true
}

func matchesTypes(tx models.Transaction, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if tx.Type == t {
			return true
		}
	}
	return false
}

func matchesCategories(tx models.Transaction, categoryIDs []string) bool {
	if len(categoryIDs) == 0 {
		return true
	}
	for _, id := range categoryIDs {
		if tx.CategoryID == id {
			return true
		}
	}
	return false
}
