package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/export"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newTxCommand(dataDir *string) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(newTxAddCommand(dataDir))
	txCmd.AddCommand(newTxListCommand(dataDir))
	txCmd.AddCommand(newTxExportCommand(dataDir))
	return txCmd
}

func newTxAddCommand(dataDir *string) *cobra.Command {
	var (
		txType        string
		amount        string
		category      string
		date          string
		description   string
		paymentMethod string
		recurring     bool
		frequency     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense transaction",
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
			when, err := parseDateFlag(date, "date")
			if err != nil {
				return err
			}
			if when.IsZero() {
				when = model.DateOf(time.Now())
			}

			txn, err := st.AddTransaction(store.TransactionParams{
				Type:               model.TransactionType(txType),
				Amount:             amt,
				Category:           category,
				Date:               when,
				Description:        description,
				PaymentMethod:      paymentMethod,
				IsRecurring:        recurring,
				RecurringFrequency: model.Frequency(frequency),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %s (%s) on %s [%s]\n",
				txn.Type, txn.Amount.StringFixed(2), txn.Category, txn.Date, txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "income or expense (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "cash", "payment method")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "mark as recurring")
	cmd.Flags().StringVar(&frequency, "frequency", "", "recurring frequency (daily, weekly, monthly, yearly)")

	return cmd
}

func newTxListCommand(dataDir *string) *cobra.Command {
	var (
		txType   string
		category string
		from     string
		to       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			fromDate, err := parseDateFlag(from, "from")
			if err != nil {
				return err
			}
			toDate, err := parseDateFlag(to, "to")
			if err != nil {
				return err
			}

			matched := st.Transactions(store.Filter{
				Type:     model.TransactionType(txType),
				Category: category,
				From:     fromDate,
				To:       toDate,
			})
			if len(matched) == 0 {
				fmt.Println("No transactions found matching your filters.")
				return nil
			}

			currency := st.Settings().Currency
			for _, t := range newestFirst(matched) {
				sign := "+"
				if t.Type == model.TypeExpense {
					sign = "-"
				}
				desc := t.Description
				if desc == "" {
					desc = t.Category
				}
				fmt.Printf("%s  %-7s  %-20s  %-24s  %s%s  %s\n",
					t.Date, t.Type, t.Category, desc, sign,
					model.FormatAmount(t.Amount, currency), t.PaymentMethod)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "filter by type")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&from, "from", "", "start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date YYYY-MM-DD (inclusive)")

	return cmd
}

func newTxExportCommand(dataDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			transactions := st.Transactions(store.Filter{})
			if err := export.WriteCSV(f, transactions); err != nil {
				return err
			}
			fmt.Printf("Wrote %d transactions to %s\n", len(transactions), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "transactions.csv", "output file")

	return cmd
}
