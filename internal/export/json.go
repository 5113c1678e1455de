package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// ErrInvalidFormat reports an import file that does not parse as the
// expected structure. The store is left untouched; there is no partial
// apply.
var ErrInvalidFormat = errors.New("invalid import format")

// Document is the import/export file contract: the five collections,
// settings, the user descriptor, and the export timestamp.
type Document struct {
	Transactions []model.Transaction  `json:"transactions"`
	Budgets      []model.Budget       `json:"budgets"`
	Goals        []model.Goal         `json:"goals"`
	Bills        []model.Bill         `json:"bills"`
	Settings     *model.SettingsPatch `json:"settings"`
	CurrentUser  *model.User          `json:"currentUser"`
	ExportDate   time.Time            `json:"exportDate"`
}

// BuildDocument assembles an export document from the snapshot and user.
func BuildDocument(data store.Data, user *model.User, now time.Time) Document {
	s := data.Settings
	return Document{
		Transactions: data.Transactions,
		Budgets:      data.Budgets,
		Goals:        data.Goals,
		Bills:        data.Bills,
		Settings: &model.SettingsPatch{
			Currency:           &s.Currency,
			EmailNotifications: &s.EmailNotifications,
			BudgetAlerts:       &s.BudgetAlerts,
			BillReminders:      &s.BillReminders,
			Theme:              &s.Theme,
		},
		CurrentUser: user,
		ExportDate:  now,
	}
}

// MarshalDocument renders a document as indented JSON.
func MarshalDocument(doc Document) ([]byte, error) {
	blob, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling export document: %w", err)
	}
	return blob, nil
}

// ParseDocument parses an import file. Any parse or shape failure yields
// ErrInvalidFormat.
func ParseDocument(blob []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(blob, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

// validateDocument checks the record invariants a parsed file can violate.
// Amounts and targets must be positive; a store must never hold a record
// that a later percentage computation would divide by zero on.
func validateDocument(doc Document) error {
	for _, t := range doc.Transactions {
		if !t.Amount.IsPositive() {
			return fmt.Errorf("%w: transaction %q has a non-positive amount", ErrInvalidFormat, t.ID)
		}
	}
	for _, b := range doc.Budgets {
		if !b.Amount.IsPositive() {
			return fmt.Errorf("%w: budget %q has a non-positive amount", ErrInvalidFormat, b.ID)
		}
	}
	for _, g := range doc.Goals {
		if !g.Target.IsPositive() {
			return fmt.Errorf("%w: goal %q has a non-positive target", ErrInvalidFormat, g.ID)
		}
		if g.Current.IsNegative() {
			return fmt.Errorf("%w: goal %q has a negative current amount", ErrInvalidFormat, g.ID)
		}
	}
	for _, b := range doc.Bills {
		if !b.Amount.IsPositive() {
			return fmt.Errorf("%w: bill %q has a non-positive amount", ErrInvalidFormat, b.ID)
		}
	}
	return nil
}

// Import replaces the store's collections with the document's and merges
// settings field-by-field; fields absent from the document keep their
// current values. A document whose records violate the store's invariants
// is rejected whole with ErrInvalidFormat and the store is left untouched.
// The apply itself is one committed mutation.
func Import(s *store.Store, doc Document) error {
	if err := validateDocument(doc); err != nil {
		return err
	}
	data := store.Data{
		Transactions: doc.Transactions,
		Budgets:      doc.Budgets,
		Goals:        doc.Goals,
		Bills:        doc.Bills,
	}
	return s.Replace(data, doc.Settings, doc.CurrentUser)
}
