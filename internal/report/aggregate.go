package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Totals holds income and expense sums over a set of transactions.
// Balance is always Income - Expense, decimal-exact.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// TotalsByType sums transactions by type.
func TotalsByType(transactions []model.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// BudgetSpent sums expense amounts for the budget's category inside its
// window: [startDate, startDate + period length), end exclusive, so a
// transaction landing exactly on the next period's start is not counted.
func BudgetSpent(budget model.Budget, transactions []model.Transaction) decimal.Decimal {
	end := budget.WindowEnd()
	spent := decimal.Zero
	for _, t := range transactions {
		if t.Type != model.TypeExpense || t.Category != budget.Category {
			continue
		}
		if t.Date.Before(budget.StartDate.Time) || !t.Date.Before(end.Time) {
			continue
		}
		spent = spent.Add(t.Amount)
	}
	return spent
}

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown sums transactions of the given type per category.
// Categories appear in first-seen order; consumers sort if they need to.
func CategoryBreakdown(transactions []model.Transaction, typ model.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range transactions {
		if t.Type != typ {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			index[t.Category] = len(out)
			out = append(out, CategoryTotal{Category: t.Category, Amount: t.Amount})
			continue
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	return out
}

// MonthTotal is one calendar month's income and expense sums.
type MonthTotal struct {
	Month   string // "YYYY-MM"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyTrend groups transactions by calendar month, ascending. Only
// months with at least one transaction appear; gaps are not zero-filled.
func MonthlyTrend(transactions []model.Transaction) []MonthTotal {
	byMonth := make(map[string]*MonthTotal)
	for _, t := range transactions {
		key := t.Date.MonthKey()
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = mt
		}
		switch t.Type {
		case model.TypeIncome:
			mt.Income = mt.Income.Add(t.Amount)
		case model.TypeExpense:
			mt.Expense = mt.Expense.Add(t.Amount)
		}
	}

	out := make([]MonthTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
