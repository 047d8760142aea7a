package models

import "github.com/shopspring/decimal"

// ExpenseHead is the DB row for a named expense category.
type ExpenseHead struct {
	HeadID      string `json:"headID"`
	Name        string `json:"name"` // unique
	Description string `json:"description"`
	AuditFields
}

// Expense is the DB row for a single expense against a shift.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	ShiftID     string          `json:"shiftID"` // FK -> shifts
	HeadID      string          `json:"headID"`  // FK -> expense_heads
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"` // sales_cash|owner_pocket
	Description string          `json:"description"`
	AuditFields
}
