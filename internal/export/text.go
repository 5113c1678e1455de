package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

// WriteReport renders a resolved report as a printable text document:
// period summary, expense breakdown (largest first), and a transaction
// table (newest first). Totals come straight from the report.
func WriteReport(w io.Writer, r *report.Report, currency string) error {
	period := string(r.Period)
	if r.Period == report.PeriodCustom {
		period = fmt.Sprintf("%s to %s", r.Start.Display(), r.End.Display())
	} else {
		period = strings.ToUpper(period[:1]) + period[1:]
	}

	fmt.Fprintln(w, "Financial Report")
	fmt.Fprintf(w, "Period: %s (%s - %s)\n", period, r.Start, r.End)
	fmt.Fprintf(w, "Total transactions: %d\n\n", len(r.Transactions))

	fmt.Fprintf(w, "Total Income:   %s\n", model.FormatAmount(r.Totals.Income, currency))
	fmt.Fprintf(w, "Total Expenses: %s\n", model.FormatAmount(r.Totals.Expense, currency))
	fmt.Fprintf(w, "Net Balance:    %s\n", model.FormatAmount(r.Totals.Balance, currency))

	if len(r.Expenses) > 0 {
		fmt.Fprintln(w, "\nExpenses by Category")
		byAmount := append([]report.CategoryTotal(nil), r.Expenses...)
		sort.SliceStable(byAmount, func(i, j int) bool {
			return byAmount[i].Amount.GreaterThan(byAmount[j].Amount)
		})
		for _, c := range byAmount {
			fmt.Fprintf(w, "  %-24s %s\n", c.Category, model.FormatAmount(c.Amount, currency))
		}
	}

	fmt.Fprintln(w, "\nTransactions")
	newest := append([]model.Transaction(nil), r.Transactions...)
	sort.SliceStable(newest, func(i, j int) bool {
		return newest[i].Date.After(newest[j].Date.Time)
	})
	for _, t := range newest {
		sign := "+"
		if t.Type == model.TypeExpense {
			sign = "-"
		}
		desc := t.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "  %s  %-7s  %-20s  %-24s  %s%s\n",
			t.Date, t.Type, t.Category, desc, sign, model.FormatAmount(t.Amount, currency))
	}
	return nil
}
