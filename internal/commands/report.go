package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/export"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newReportCommand(dataDir *string) *cobra.Command {
	var (
		period string
		start  string
		end    string
		csvOut string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a financial report for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, kv, err := openStore(*dataDir)
			if err != nil {
				return err
			}
			defer kv.Close()

			kind := report.PeriodKind(period)
			if !kind.Valid() {
				return fmt.Errorf("--period: expected month, quarter, year, or custom, got %q", period)
			}
			customStart, err := parseDateFlag(start, "start")
			if err != nil {
				return err
			}
			customEnd, err := parseDateFlag(end, "end")
			if err != nil {
				return err
			}

			transactions := st.Transactions(store.Filter{})
			r, err := report.Build(transactions, kind, model.DateOf(time.Now()), customStart, customEnd)
			if err != nil {
				return err
			}
			if r == nil {
				fmt.Println("No transactions found for the selected period")
				return nil
			}

			currency := st.Settings().Currency
			if err := export.WriteReport(os.Stdout, r, currency); err != nil {
				return err
			}

			if csvOut != "" {
				f, err := os.Create(csvOut)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvOut, err)
				}
				defer f.Close()
				if err := export.WriteCSV(f, r.Transactions); err != nil {
					return err
				}
				fmt.Printf("\nWrote %d transactions to %s\n", len(r.Transactions), csvOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "month, quarter, year, or custom")
	cmd.Flags().StringVar(&start, "start", "", "custom range start YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "custom range end YYYY-MM-DD")
	cmd.Flags().StringVar(&csvOut, "csv", "", "also write the report's transactions as CSV")

	return cmd
}
