package domain

import "github.com/shopspring/decimal"

// Withdrawal is the owner removing cash from the sales till during a shift.
// Withdrawals have no funding source: they are till movements by definition
// and always reduce expected cash.
type Withdrawal struct {
	WithdrawalID string          `json:"withdrawalID"`
	ShiftID      string          `json:"shiftID"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	AuditFields
}
