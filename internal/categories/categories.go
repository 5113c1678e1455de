// Package categories provides the fixed category taxonomy for transactions,
// budgets, and bills.
package categories

import "github.com/fintrack-dev/fintrack/internal/model"

var incomeCategories = []string{
	"Salary",
	"Freelance",
	"Business",
	"Investment",
	"Gift",
	"Other Income",
}

var expenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Insurance",
	"Other Expense",
}

// ForType returns the categories available for a transaction type.
func ForType(t model.TransactionType) []string {
	switch t {
	case model.TypeIncome:
		return incomeCategories
	case model.TypeExpense:
		return expenseCategories
	}
	return nil
}

// All returns the combined income and expense taxonomy, income first.
// Budgets and bills draw from this combined list.
func All() []string {
	all := make([]string, 0, len(incomeCategories)+len(expenseCategories))
	all = append(all, incomeCategories...)
	all = append(all, expenseCategories...)
	return all
}

// ValidForType reports whether name is a known category for the given type.
func ValidForType(name string, t model.TransactionType) bool {
	for _, c := range ForType(t) {
		if c == name {
			return true
		}
	}
	return false
}

// Valid reports whether name appears anywhere in the taxonomy.
func Valid(name string) bool {
	for _, c := range All() {
		if c == name {
			return true
		}
	}
	return false
}
