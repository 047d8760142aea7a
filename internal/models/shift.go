package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is the DB row for one operating period on one date.
// (date, shift_name) is unique.
type Shift struct {
	ShiftID            string           `json:"shiftID"`
	Date               time.Time        `json:"date"`
	ShiftName          string           `json:"shiftName"`
	OpeningCash        decimal.Decimal  `json:"openingCash"`
	TotalSale          decimal.Decimal  `json:"totalSale"`
	ExpectedCash       *decimal.Decimal `json:"expectedCash"`
	ClosingCashEntered *decimal.Decimal `json:"closingCashEntered"`
	Status             string           `json:"status"` // open|closed
	ClosedAt           *time.Time       `json:"closedAt"`
	AuditFields
}
