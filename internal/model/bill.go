package model

import "github.com/shopspring/decimal"

// Bill is an upcoming payment obligation. Bills are created unpaid; paying
// one converts it into an expense transaction and removes the bill itself,
// so only the transaction trace survives.
type Bill struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	DueDate   Date            `json:"dueDate"`
	Recurring Frequency       `json:"recurring,omitempty"` // empty = one-time
	IsPaid    bool            `json:"isPaid"`
	CreatedAt Date            `json:"createdAt"`
}
