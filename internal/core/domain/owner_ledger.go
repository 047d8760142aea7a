package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerLedgerEntry records money moving between the owner's pocket and the
// business. Amount is signed: positive means the owner put cash in (funding
// an outflow from owner_pocket), negative means the owner took cash out
// (withdrawals). The ledger is append-only.
type OwnerLedgerEntry struct {
	EntryID         string          `json:"entryID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ShiftID         *string         `json:"shiftID"` // optional back-reference
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}

// OwnerLedgerLine pairs an entry with the cumulative balance after it.
// Balances are never persisted; they are recomputed per query from the
// entries in transaction-date order.
type OwnerLedgerLine struct {
	OwnerLedgerEntry
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
