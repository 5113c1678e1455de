package commands

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// parseDateFlag parses a --flag date value; empty yields the zero date.
func parseDateFlag(value, name string) (model.Date, error) {
	if value == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", name, value)
	}
	return d, nil
}

// parseAmountFlag parses a decimal --flag value. Sign constraints are the
// store's to enforce; goal progress, for one, accepts zero.
func parseAmountFlag(value, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("--%s: expected a decimal amount, got %q", name, value)
	}
	return d, nil
}

// newestFirst returns a copy of transactions sorted by date descending.
func newestFirst(transactions []model.Transaction) []model.Transaction {
	out := append([]model.Transaction(nil), transactions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
