package repositories

import (
	"context"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
)

// ExpenseHeadReader defines read operations for expense head data
type ExpenseHeadReader interface {
	// FindExpenseHeadByID retrieves a head by its unique identifier.
	FindExpenseHeadByID(ctx context.Context, headID string) (*domain.ExpenseHead, error)

	// FindExpenseHeadByName retrieves a head by its exact name. Used to locate
	// the reserved "Cash Shortage" head at shift close.
	FindExpenseHeadByName(ctx context.Context, name string) (*domain.ExpenseHead, error)

	// ListExpenseHeads retrieves every expense head, ordered by name.
	ListExpenseHeads(ctx context.Context) ([]domain.ExpenseHead, error)
}

// ExpenseHeadWriter defines write operations for expense head data
type ExpenseHeadWriter interface {
	// SaveExpenseHead inserts a new expense head.
	SaveExpenseHead(ctx context.Context, head domain.ExpenseHead) error
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// ListExpensesByShift retrieves every expense recorded against a shift.
	ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error)

	// ListExpensesByShiftIDs retrieves expenses across multiple shifts.
	ListExpensesByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense inserts a new expense. Expenses are immutable once created.
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseHeadReader
	ExpenseHeadWriter
	ExpenseReader
	ExpenseWriter
}
