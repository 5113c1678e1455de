package alerts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// budgetData builds a snapshot with one monthly Food budget of 100 and one
// expense of the given amount inside its window.
func budgetData(spent string) store.Data {
	return store.Data{
		Budgets: []model.Budget{{
			ID:        "b1",
			Category:  "Food & Dining",
			Amount:    dec("100.00"),
			Period:    model.PeriodMonthly,
			StartDate: model.NewDate(2024, 1, 1),
		}},
		Transactions: []model.Transaction{{
			Type:     model.TypeExpense,
			Category: "Food & Dining",
			Amount:   dec(spent),
			Date:     model.NewDate(2024, 1, 10),
		}},
		Settings: model.DefaultSettings(),
	}
}

func TestEvaluate_BudgetThresholds(t *testing.T) {
	today := model.NewDate(2024, 1, 15)

	// 81% used: exactly one warning.
	a := Evaluate(budgetData("81.00"), today)
	require.Len(t, a.Budget, 1)
	assert.Contains(t, a.Budget[0], "Budget warning for Food & Dining")
	assert.Contains(t, a.Budget[0], "81% used")

	// 101% used: exactly one exceeded alert, no warning.
	a = Evaluate(budgetData("101.00"), today)
	require.Len(t, a.Budget, 1)
	assert.Contains(t, a.Budget[0], "Budget exceeded for Food & Dining")

	// 80% used: no alert.
	a = Evaluate(budgetData("80.00"), today)
	assert.Empty(t, a.Budget)

	// Exactly 100%: still a warning, not exceeded.
	a = Evaluate(budgetData("100.00"), today)
	require.Len(t, a.Budget, 1)
	assert.Contains(t, a.Budget[0], "Budget warning")
}

func TestEvaluate_ZeroCapBudgetSkipped(t *testing.T) {
	// A blob edited outside the CLI can hold a zero cap; evaluation must
	// skip it rather than divide by zero.
	data := budgetData("50.00")
	data.Budgets[0].Amount = decimal.Zero

	a := Evaluate(data, model.NewDate(2024, 1, 15))
	assert.Empty(t, a.Budget)
}

func TestEvaluate_BudgetAlertsSuppressed(t *testing.T) {
	data := budgetData("150.00")
	data.Settings.BudgetAlerts = false
	a := Evaluate(data, model.NewDate(2024, 1, 15))
	assert.Empty(t, a.Budget)
}

func billData(due model.Date) store.Data {
	return store.Data{
		Bills: []model.Bill{{
			ID:       "bill1",
			Name:     "Rent",
			Amount:   dec("500.00"),
			Category: "Bills & Utilities",
			DueDate:  due,
		}},
		Settings: model.DefaultSettings(),
	}
}

func TestEvaluate_BillReminders(t *testing.T) {
	today := model.NewDate(2024, 6, 10)

	a := Evaluate(billData(model.NewDate(2024, 6, 10)), today)
	require.Len(t, a.Bill, 1)
	assert.Equal(t, "Rent is due today ($500.00)", a.Bill[0])

	a = Evaluate(billData(model.NewDate(2024, 6, 13)), today)
	require.Len(t, a.Bill, 1)
	assert.Equal(t, "Rent is due in 3 days ($500.00)", a.Bill[0])

	a = Evaluate(billData(model.NewDate(2024, 6, 7)), today)
	require.Len(t, a.Bill, 1)
	assert.Equal(t, "Rent is overdue by 3 days ($500.00)", a.Bill[0])

	// More than 3 days out: silent.
	a = Evaluate(billData(model.NewDate(2024, 6, 14)), today)
	assert.Empty(t, a.Bill)
}

func TestEvaluate_OverdueListedBeforeUpcoming(t *testing.T) {
	data := store.Data{
		Bills: []model.Bill{
			{ID: "1", Name: "Internet", Amount: dec("40.00"), DueDate: model.NewDate(2024, 6, 12)},
			{ID: "2", Name: "Rent", Amount: dec("500.00"), DueDate: model.NewDate(2024, 6, 1)},
		},
		Settings: model.DefaultSettings(),
	}
	a := Evaluate(data, model.NewDate(2024, 6, 10))
	require.Len(t, a.Bill, 2)
	assert.Contains(t, a.Bill[0], "Rent is overdue")
	assert.Contains(t, a.Bill[1], "Internet is due in 2 days")
}

func TestEvaluate_PaidBillsIgnored(t *testing.T) {
	data := billData(model.NewDate(2024, 6, 1))
	data.Bills[0].IsPaid = true
	a := Evaluate(data, model.NewDate(2024, 6, 10))
	assert.Empty(t, a.Bill)
}

func TestEvaluate_BillRemindersSuppressed(t *testing.T) {
	data := billData(model.NewDate(2024, 6, 1))
	data.Settings.BillReminders = false
	a := Evaluate(data, model.NewDate(2024, 6, 10))
	assert.Empty(t, a.Bill)
}

func TestAlerts_Empty(t *testing.T) {
	assert.True(t, Alerts{}.Empty())
	assert.False(t, Alerts{Budget: []string{"x"}}.Empty())
	assert.False(t, Alerts{Bill: []string{"x"}}.Empty())
}

func TestEvaluate_CurrencyFormatting(t *testing.T) {
	data := billData(model.NewDate(2024, 6, 10))
	data.Settings.Currency = "EUR"
	a := Evaluate(data, model.NewDate(2024, 6, 10))
	require.Len(t, a.Bill, 1)
	assert.Contains(t, a.Bill[0], "€500.00")
}
