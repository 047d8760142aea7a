package services

import (
	"context"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/dto"
)

// ExpenseHeadSvc defines operations for managing expense heads
type ExpenseHeadSvc interface {
	// CreateExpenseHead creates a new named expense category.
	CreateExpenseHead(ctx context.Context, req dto.CreateExpenseHeadRequest) (*domain.ExpenseHead, error)

	// ListExpenseHeads retrieves every expense head.
	ListExpenseHeads(ctx context.Context) ([]domain.ExpenseHead, error)
}

// ExpenseRecorderSvc defines operations for recording expenses against shifts
type ExpenseRecorderSvc interface {
	// AddExpense records an expense against an open shift and recomputes the
	// shift's expected cash. Owner-pocket expenses also append a positive
	// owner ledger entry.
	AddExpense(ctx context.Context, shiftID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpensesByShift retrieves a shift's expenses enriched with head names.
	ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseHeadSvc
	ExpenseRecorderSvc
}
