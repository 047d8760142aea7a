package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerLedgerEntry is the DB row for a signed owner-pocket movement.
// Rows are append-only.
type OwnerLedgerEntry struct {
	EntryID         string          `json:"entryID"`
	Amount          decimal.Decimal `json:"amount"` // signed
	Description     string          `json:"description"`
	ShiftID         *string         `json:"shiftID"` // optional FK -> shifts
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
