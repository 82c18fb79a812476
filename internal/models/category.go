package models

// Category is a named, type-tagged label transactions reference for grouping.
// The reference from Transaction.CategoryID is soft: a dangling id is tolerated
// everywhere and simply excluded from category-keyed views.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

// DefaultCategories returns the fixed category set installed for a user
// whose stored collection is empty or unreadable.
func DefaultCategories() []Category {
	return []Category{
		{ID: "salary", Name: "Salary", Type: TransactionTypeIncome},
		{ID: "bonus", Name: "Bonus", Type: TransactionTypeIncome},
		{ID: "investment", Name: "Investment", Type: TransactionTypeIncome},
		{ID: "gift", Name: "Gift", Type: TransactionTypeIncome},
		{ID: "other-income", Name: "Other Income", Type: TransactionTypeIncome},

		{ID: "food", Name: "Food & Dining", Type: TransactionTypeExpense},
		{ID: "shopping", Name: "Shopping", Type: TransactionTypeExpense},
		{ID: "housing", Name: "Housing", Type: TransactionTypeExpense},
		{ID: "transportation", Name: "Transportation", Type: TransactionTypeExpense},
		{ID: "entertainment", Name: "Entertainment", Type: TransactionTypeExpense},
		{ID: "medical", Name: "Medical", Type: TransactionTypeExpense},
		{ID: "education", Name: "Education", Type: TransactionTypeExpense},
		{ID: "utilities", Name: "Utilities", Type: TransactionTypeExpense},
		{ID: "other-expense", Name: "Other Expense", Type: TransactionTypeExpense},
	}
}

// CategoryByID returns the category with the given id, or nil if absent
func CategoryByID(categories []Category, id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}
