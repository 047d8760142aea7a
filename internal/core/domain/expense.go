package domain

import "github.com/shopspring/decimal"

// CashShortageHeadName is the reserved expense head used by automatic
// shortage recording at shift close. It must exist before any shift can be
// closed with a shortfall.
const CashShortageHeadName = "Cash Shortage"

// ExpenseHead is a named expense category, global across shifts.
type ExpenseHead struct {
	HeadID      string `json:"headID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// Expense is a single outflow recorded against a shift and an expense head.
// Expenses are immutable once created.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	ShiftID     string          `json:"shiftID"`
	HeadID      string          `json:"headID"`
	HeadName    string          `json:"headName"` // enriched from expense_heads, not stored
	Amount      decimal.Decimal `json:"amount"`
	Source      FundingSource   `json:"source"`
	Description string          `json:"description"`
	AuditFields
}
