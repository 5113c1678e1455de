package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newBudgetCommand(dataDir *string) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}
	budgetCmd.AddCommand(newBudgetAddCommand(dataDir))
	budgetCmd.AddCommand(newBudgetListCommand(dataDir))
	budgetCmd.AddCommand(newBudgetDeleteCommand(dataDir))
	return budgetCmd
}

func newBudgetAddCommand(dataDir *string) *cobra.Command {
	var (
		category string
		amount   string
		period   string
		start    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget for a category and period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			amt, err := parseAmountFlag(amount, "amount")
			if err != nil {
				return err
			}
			startDate, err := parseDateFlag(start, "start")
			if err != nil {
				return err
			}
			if startDate.IsZero() {
				startDate = model.DateOf(time.Now())
			}

			budget, err := st.AddBudget(store.BudgetParams{
				Category:  category,
				Amount:    amt,
				Period:    model.BudgetPeriod(period),
				StartDate: startDate,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created %s budget for %s: %s starting %s [%s]\n",
				budget.Period, budget.Category, budget.Amount.StringFixed(2), budget.StartDate, budget.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amount, "amount", "", "spending cap (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&period, "period", "monthly", "weekly, monthly, or yearly")
	cmd.Flags().StringVar(&start, "start", "", "window start YYYY-MM-DD (default today)")

	return cmd
}

func newBudgetListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with computed spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			data := st.Data()
			if len(data.Budgets) == 0 {
				fmt.Println("No budgets set. Create your first budget!")
				return nil
			}

			currency := data.Settings.Currency
			for _, b := range data.Budgets {
				spent := report.BudgetSpent(b, data.Transactions)
				pct := decimal.Zero
				if b.Amount.IsPositive() {
					pct = spent.Div(b.Amount).Mul(decimal.NewFromInt(100))
				}
				fmt.Printf("%-20s  %s / %s  (%s%% used, %s from %s)  [%s]\n",
					b.Category,
					model.FormatAmount(spent, currency),
					model.FormatAmount(b.Amount, currency),
					pct.Round(0), b.Period, b.StartDate, b.ID)
			}
			return nil
		},
	}
}

func newBudgetDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := st.DeleteBudget(args[0]); err != nil {
				return err
			}
			fmt.Println("Budget deleted")
			return nil
		},
	}
}
