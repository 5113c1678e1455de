package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/alerts"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

// recentCount is how many transactions the dashboard shows.
const recentCount = 5

// trendMonths is how many trailing months the trend section shows.
const trendMonths = 6

func newDashboardCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, recent transactions, and alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			data := st.Data()
			currency := data.Settings.Currency
			totals := report.TotalsByType(data.Transactions)

			fmt.Printf("Total Income:   %s\n", model.FormatAmount(totals.Income, currency))
			fmt.Printf("Total Expenses: %s\n", model.FormatAmount(totals.Expense, currency))
			fmt.Printf("Balance:        %s\n", model.FormatAmount(totals.Balance, currency))
			fmt.Printf("Savings:        %s\n", model.FormatAmount(st.TotalSaved(), currency))

			fmt.Println("\nRecent Transactions")
			recent := newestFirst(data.Transactions)
			if len(recent) == 0 {
				fmt.Println("  No transactions yet. Add your first transaction!")
			}
			if len(recent) > recentCount {
				recent = recent[:recentCount]
			}
			for _, t := range recent {
				sign := "+"
				if t.Type == model.TypeExpense {
					sign = "-"
				}
				desc := t.Description
				if desc == "" {
					desc = t.Category
				}
				fmt.Printf("  %s  %-24s  %s%s\n", t.Date, desc, sign, model.FormatAmount(t.Amount, currency))
			}

			trend := report.MonthlyTrend(data.Transactions)
			if len(trend) > trendMonths {
				trend = trend[len(trend)-trendMonths:]
			}
			if len(trend) > 0 {
				fmt.Println("\nMonthly Trend")
				for _, m := range trend {
					fmt.Printf("  %s  income %s  expenses %s\n",
						m.Month,
						model.FormatAmount(m.Income, currency),
						model.FormatAmount(m.Expense, currency))
				}
			}

			a := alerts.Evaluate(data, model.DateOf(time.Now()))
			if a.Empty() {
				return nil
			}
			fmt.Println("\nAlerts")
			for _, msg := range a.Budget {
				fmt.Printf("  %s\n", msg)
			}
			for _, msg := range a.Bill {
				fmt.Printf("  %s\n", msg)
			}
			return nil
		},
	}
}
