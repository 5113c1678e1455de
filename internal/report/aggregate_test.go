package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(typ model.TransactionType, category, amount string, date model.Date) model.Transaction {
	return model.Transaction{
		Type:     typ,
		Category: category,
		Amount:   dec(amount),
		Date:     date,
	}
}

func TestTotalsByType(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeIncome, "Salary", "1000.00", model.NewDate(2024, 1, 5)),
		txn(model.TypeExpense, "Food & Dining", "123.45", model.NewDate(2024, 1, 6)),
		txn(model.TypeIncome, "Freelance", "0.01", model.NewDate(2024, 1, 7)),
		txn(model.TypeExpense, "Travel", "76.56", model.NewDate(2024, 1, 8)),
	}

	totals := TotalsByType(transactions)
	assert.True(t, totals.Income.Equal(dec("1000.01")))
	assert.True(t, totals.Expense.Equal(dec("200.01")))
	assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expense)), "balance is income minus expense exactly")
	assert.True(t, totals.Balance.Equal(dec("800.00")))
}

func TestTotalsByType_Empty(t *testing.T) {
	totals := TotalsByType(nil)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Balance.IsZero())
}

func TestBudgetSpent(t *testing.T) {
	budget := model.Budget{
		Category:  "Food & Dining",
		Amount:    dec("200.00"),
		Period:    model.PeriodMonthly,
		StartDate: model.NewDate(2024, 1, 10),
	}
	transactions := []model.Transaction{
		// Counted: right category, expense, inside window.
		txn(model.TypeExpense, "Food & Dining", "20.00", model.NewDate(2024, 1, 10)),
		txn(model.TypeExpense, "Food & Dining", "30.00", model.NewDate(2024, 2, 9)),
		// Wrong category.
		txn(model.TypeExpense, "Travel", "99.00", model.NewDate(2024, 1, 15)),
		// Income never counts, even with a matching category string.
		txn(model.TypeIncome, "Food & Dining", "50.00", model.NewDate(2024, 1, 15)),
		// Before the window.
		txn(model.TypeExpense, "Food & Dining", "40.00", model.NewDate(2024, 1, 9)),
		// Exactly on the next period start: excluded (exclusive end).
		txn(model.TypeExpense, "Food & Dining", "60.00", model.NewDate(2024, 2, 10)),
	}

	spent := BudgetSpent(budget, transactions)
	assert.True(t, spent.Equal(dec("50.00")), "got %s", spent)
}

func TestBudgetSpent_WeeklyWindow(t *testing.T) {
	budget := model.Budget{
		Category:  "Entertainment",
		Amount:    dec("50.00"),
		Period:    model.PeriodWeekly,
		StartDate: model.NewDate(2024, 3, 1),
	}
	transactions := []model.Transaction{
		txn(model.TypeExpense, "Entertainment", "10.00", model.NewDate(2024, 3, 1)),
		txn(model.TypeExpense, "Entertainment", "10.00", model.NewDate(2024, 3, 7)),
		txn(model.TypeExpense, "Entertainment", "10.00", model.NewDate(2024, 3, 8)), // next window
	}
	assert.True(t, BudgetSpent(budget, transactions).Equal(dec("20.00")))
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "Food", "10.00", model.NewDate(2024, 1, 1)),
		txn(model.TypeExpense, "Food", "5.00", model.NewDate(2024, 1, 2)),
		txn(model.TypeExpense, "Travel", "20.00", model.NewDate(2024, 1, 3)),
		txn(model.TypeIncome, "Salary", "100.00", model.NewDate(2024, 1, 4)),
	}

	breakdown := CategoryBreakdown(transactions, model.TypeExpense)
	require.Len(t, breakdown, 2)
	// First-seen order, values summed.
	assert.Equal(t, "Food", breakdown[0].Category)
	assert.True(t, breakdown[0].Amount.Equal(dec("15.00")))
	assert.Equal(t, "Travel", breakdown[1].Category)
	assert.True(t, breakdown[1].Amount.Equal(dec("20.00")))
}

func TestMonthlyTrend(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "Food & Dining", "10.00", model.NewDate(2024, 3, 5)),
		txn(model.TypeIncome, "Salary", "100.00", model.NewDate(2024, 1, 15)),
		txn(model.TypeExpense, "Travel", "25.00", model.NewDate(2024, 1, 20)),
		// No February transactions: the gap is not zero-filled.
	}

	trend := MonthlyTrend(transactions)
	require.Len(t, trend, 2)
	assert.Equal(t, "2024-01", trend[0].Month)
	assert.True(t, trend[0].Income.Equal(dec("100.00")))
	assert.True(t, trend[0].Expense.Equal(dec("25.00")))
	assert.Equal(t, "2024-03", trend[1].Month)
	assert.True(t, trend[1].Income.IsZero())
	assert.True(t, trend[1].Expense.Equal(dec("10.00")))
}
