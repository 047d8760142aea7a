package models

import "github.com/shopspring/decimal"

// Withdrawal is the DB row for the owner taking cash out of the till.
type Withdrawal struct {
	WithdrawalID string          `json:"withdrawalID"`
	ShiftID      string          `json:"shiftID"` // FK -> shifts
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	AuditFields
}
