package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftName identifies one of the three fixed operating periods within a day.
type ShiftName string

const (
	Morning ShiftName = "Morning"
	Evening ShiftName = "Evening"
	Night   ShiftName = "Night"
)

// shiftOrder is the explicit within-day sequence of shifts. The previous-shift
// lookup depends on this table, never on string comparison of the names.
var shiftOrder = map[ShiftName]int{
	Morning: 0,
	Evening: 1,
	Night:   2,
}

// Order returns the position of the shift within its day (0-based),
// or -1 for an unknown name.
func (n ShiftName) Order() int {
	if ord, ok := shiftOrder[n]; ok {
		return ord
	}
	return -1
}

// IsValid reports whether the name is one of the three known shifts.
func (n ShiftName) IsValid() bool {
	_, ok := shiftOrder[n]
	return ok
}

// ShiftNamesBefore returns the shift names that precede n within a day,
// earliest first. Unknown names yield an empty slice.
func ShiftNamesBefore(n ShiftName) []ShiftName {
	ord := n.Order()
	if ord <= 0 {
		return nil
	}
	names := make([]ShiftName, 0, ord)
	for _, candidate := range []ShiftName{Morning, Evening, Night} {
		if candidate.Order() < ord {
			names = append(names, candidate)
		}
	}
	return names
}

// ShiftStatus indicates the lifecycle state of a shift.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift is the unit of cash accountability: one operating period on one date.
// At most one shift exists per (date, shift name) pair.
type Shift struct {
	ShiftID            string           `json:"shiftID"`
	Date               time.Time        `json:"date"` // calendar date, time component zero
	ShiftName          ShiftName        `json:"shiftName"`
	OpeningCash        decimal.Decimal  `json:"openingCash"` // fixed at creation, carried from the prior shift
	TotalSale          decimal.Decimal  `json:"totalSale"`
	ExpectedCash       *decimal.Decimal `json:"expectedCash"`       // nil until first recompute
	ClosingCashEntered *decimal.Decimal `json:"closingCashEntered"` // nil until close
	Status             ShiftStatus      `json:"status"`
	ClosedAt           *time.Time       `json:"closedAt"`
	AuditFields
}

// IsClosed reports whether the shift has completed its open -> closed transition.
func (s Shift) IsClosed() bool {
	return s.Status == ShiftClosed
}

// CarriedForwardCash is the amount the next shift opens with: the computed
// expected cash when present, else the counted closing cash, else zero.
func (s Shift) CarriedForwardCash() decimal.Decimal {
	if s.ExpectedCash != nil {
		return *s.ExpectedCash
	}
	if s.ClosingCashEntered != nil {
		return *s.ClosingCashEntered
	}
	return decimal.Zero
}
