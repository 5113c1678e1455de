package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newBillCommand(dataDir *string) *cobra.Command {
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Bill operations",
	}
	billCmd.AddCommand(newBillAddCommand(dataDir))
	billCmd.AddCommand(newBillListCommand(dataDir))
	billCmd.AddCommand(newBillPayCommand(dataDir))
	billCmd.AddCommand(newBillDeleteCommand(dataDir))
	return billCmd
}

func newBillAddCommand(dataDir *string) *cobra.Command {
	var (
		name      string
		amount    string
		category  string
		due       string
		recurring string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an upcoming bill",
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
			dueDate, err := parseDateFlag(due, "due")
			if err != nil {
				return err
			}

			bill, err := st.AddBill(store.BillParams{
				Name:      name,
				Amount:    amt,
				Category:  category,
				DueDate:   dueDate,
				Recurring: model.Frequency(recurring),
			}, model.DateOf(time.Now()))
			if err != nil {
				return err
			}

			fmt.Printf("Added bill %q: %s due %s [%s]\n",
				bill.Name, bill.Amount.StringFixed(2), bill.DueDate, bill.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("due")
	cmd.Flags().StringVar(&recurring, "recurring", "", "frequency (weekly, monthly, yearly); empty = one-time")

	return cmd
}

func newBillListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills with due status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			bills := st.Bills()
			if len(bills) == 0 {
				fmt.Println("No bills added. Add your first bill!")
				return nil
			}

			currency := st.Settings().Currency
			today := model.DateOf(time.Now())
			for _, b := range bills {
				fmt.Printf("%-20s  %s  %-20s  due %s  %s  [%s]\n",
					b.Name, model.FormatAmount(b.Amount, currency), b.Category,
					b.DueDate, dueStatus(b, today), b.ID)
			}
			return nil
		},
	}
}

// dueStatus renders a bill's status line fragment.
func dueStatus(b model.Bill, today model.Date) string {
	days := today.DaysUntil(b.DueDate)
	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d days", days)
	}
}

func newBillPayCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill paid, recording it as an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			txn, err := st.MarkBillPaid(args[0], model.DateOf(time.Now()))
			if err != nil {
				return err
			}
			fmt.Printf("Bill paid: recorded expense %s (%s) on %s\n",
				txn.Amount.StringFixed(2), txn.Category, txn.Date)
			return nil
		},
	}
}

func newBillDeleteCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := st.DeleteBill(args[0]); err != nil {
				return err
			}
			fmt.Println("Bill deleted")
			return nil
		},
	}
}
