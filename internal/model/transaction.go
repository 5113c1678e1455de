package model

import "github.com/shopspring/decimal"

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known kinds.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Frequency describes how often a recurring transaction or bill repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether the frequency is a known repetition interval.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Transaction is a single income or expense record. Transactions are
// immutable once created; they are removed only by a bulk clear or an
// import that replaces the collection.
type Transaction struct {
	ID                 string          `json:"id"`
	Type               TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Date               Date            `json:"date"`
	Description        string          `json:"description"`
	PaymentMethod      string          `json:"paymentMethod"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency Frequency       `json:"recurringFrequency,omitempty"`
}
