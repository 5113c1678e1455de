package model

import "github.com/shopspring/decimal"

// Goal is a savings target. Current is asserted by the user, not derived
// from transactions.
type Goal struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Deadline    Date            `json:"deadline"`
	Description string          `json:"description"`
	CreatedAt   Date            `json:"createdAt"`
}
