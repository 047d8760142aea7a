package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary aggregates a single date across all of its shifts.
// AvailableCash is the expected cash of the last shift of the day by the
// explicit shift ordering, zero when no shift has been recomputed yet.
type DailySummary struct {
	Date                time.Time       `json:"date"`
	TotalSale           decimal.Decimal `json:"totalSale"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	TotalWithdrawals    decimal.Decimal `json:"totalWithdrawals"`
	TotalVendorPayments decimal.Decimal `json:"totalVendorPayments"`
	AvailableCash       decimal.Decimal `json:"availableCash"`
	Shifts              []Shift         `json:"shifts"`
}

// ExpenseHeadTotal is the summed expense amount for one head over a range.
type ExpenseHeadTotal struct {
	HeadName string          `json:"headName"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseReportRow is one expense enriched with its shift and head context.
type ExpenseReportRow struct {
	Date        time.Time       `json:"date"`
	ShiftName   ShiftName       `json:"shiftName"`
	HeadName    string          `json:"headName"`
	Amount      decimal.Decimal `json:"amount"`
	Source      FundingSource   `json:"source"`
	Description string          `json:"description"`
}

// SalesSummaryRow is the total recorded sale for one date.
type SalesSummaryRow struct {
	Date      time.Time       `json:"date"`
	TotalSale decimal.Decimal `json:"totalSale"`
}

// WithdrawalReportRow is one withdrawal enriched with its shift context.
type WithdrawalReportRow struct {
	Date        time.Time       `json:"date"`
	ShiftName   ShiftName       `json:"shiftName"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// PaymentReportRow is one vendor payment enriched with shift and vendor context.
type PaymentReportRow struct {
	Date        time.Time       `json:"date"`
	ShiftName   ShiftName       `json:"shiftName"`
	VendorName  string          `json:"vendorName"`
	Amount      decimal.Decimal `json:"amount"`
	Source      FundingSource   `json:"source"`
	Description string          `json:"description"`
}
