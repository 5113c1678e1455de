// Package export renders the store's data as CSV, JSON documents, and text
// reports. Formatters consume fully-resolved inputs and never re-derive
// totals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// CSVHeader is the header row for transaction CSV exports.
const CSVHeader = "Date,Type,Category,Description,Amount,Payment Method"

// WriteCSV writes transactions as CSV. Fields containing separators or
// newlines are quoted per encoding/csv.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range transactions {
		row := []string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Description,
			t.Amount.StringFixed(2),
			t.PaymentMethod,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
