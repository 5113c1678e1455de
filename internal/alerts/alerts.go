// Package alerts derives budget-threshold and bill-due notifications from
// the current snapshot. Alerts are recomputed on every evaluation and are
// never persisted.
package alerts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// Alert thresholds: above warnThreshold percent a budget warns, above
// exceedThreshold it has been exceeded.
var (
	warnThreshold   = decimal.NewFromInt(80)
	exceedThreshold = decimal.NewFromInt(100)
)

// upcomingDays is how many days ahead a bill counts as upcoming.
const upcomingDays = 3

// Alerts holds the two independently toggleable alert lists. The container
// rendering them is hidden only when both are empty.
type Alerts struct {
	Budget []string
	Bill   []string
}

// Empty reports whether both lists are empty.
func (a Alerts) Empty() bool {
	return len(a.Budget) == 0 && len(a.Bill) == 0
}

// Evaluate derives all alerts for today from the snapshot. Budget alerts
// are suppressed entirely when settings.BudgetAlerts is false, bill
// reminders when settings.BillReminders is false.
func Evaluate(data store.Data, today model.Date) Alerts {
	var a Alerts
	if data.Settings.BudgetAlerts {
		a.Budget = budgetAlerts(data)
	}
	if data.Settings.BillReminders {
		a.Bill = billReminders(data, today)
	}
	return a
}

func budgetAlerts(data store.Data) []string {
	currency := data.Settings.Currency
	var out []string
	for _, b := range data.Budgets {
		if !b.Amount.IsPositive() {
			// A hand-edited blob can hold a zero cap; never divide by it.
			continue
		}
		spent := report.BudgetSpent(b, data.Transactions)
		pct := spent.Div(b.Amount).Mul(decimal.NewFromInt(100))
		switch {
		case pct.GreaterThan(exceedThreshold):
			out = append(out, fmt.Sprintf("Budget exceeded for %s: %s / %s",
				b.Category, model.FormatAmount(spent, currency), model.FormatAmount(b.Amount, currency)))
		case pct.GreaterThan(warnThreshold):
			out = append(out, fmt.Sprintf("Budget warning for %s: %s%% used",
				b.Category, pct.Round(0)))
		}
	}
	return out
}

// billReminders lists overdue bills first, then upcoming ones, matching
// the dashboard's reminder ordering.
func billReminders(data store.Data, today model.Date) []string {
	currency := data.Settings.Currency
	var out []string
	for _, b := range data.Bills {
		if b.IsPaid {
			continue
		}
		if days := today.DaysUntil(b.DueDate); days < 0 {
			out = append(out, fmt.Sprintf("%s is overdue by %d days (%s)",
				b.Name, -days, model.FormatAmount(b.Amount, currency)))
		}
	}
	for _, b := range data.Bills {
		if b.IsPaid {
			continue
		}
		days := today.DaysUntil(b.DueDate)
		if days < 0 || days > upcomingDays {
			continue
		}
		when := fmt.Sprintf("due in %d days", days)
		if days == 0 {
			when = "due today"
		}
		out = append(out, fmt.Sprintf("%s is %s (%s)", b.Name, when, model.FormatAmount(b.Amount, currency)))
	}
	return out
}
