package model

import "github.com/shopspring/decimal"

// BudgetPeriod is the length of a budget's spending window.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether the period is a known budget window length.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget caps spending for one category over one period. The spent amount
// is never stored; it is recomputed from transactions on every read.
// At most one budget may exist per (category, period) pair.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	StartDate Date            `json:"startDate"`
}

// WindowEnd returns the exclusive end of the budget's spending window:
// startDate + 7 days, 1 calendar month, or 1 calendar year. The window is
// anchored at StartDate and never rolls forward on its own.
func (b Budget) WindowEnd() Date {
	switch b.Period {
	case PeriodWeekly:
		return b.StartDate.AddDays(7)
	case PeriodMonthly:
		return b.StartDate.AddMonths(1)
	case PeriodYearly:
		return b.StartDate.AddYears(1)
	}
	return b.StartDate
}
