package services

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a single shift.
	GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// ListShiftsByDate retrieves every shift recorded on a date, in the
	// explicit within-day ordering.
	ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error)

	// ListWithdrawalsByShift retrieves the withdrawals recorded against a shift.
	ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error)
}

// ShiftWriterSvc defines lifecycle operations for shifts
type ShiftWriterSvc interface {
	// GetOrCreateShift returns the shift for (date, name), creating it lazily
	// with the opening cash carried forward from the preceding shift that day.
	GetOrCreateShift(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error)

	// UpdateTotalSale replaces the shift's total sale and recomputes expected
	// cash. Writing the same value again is a no-op.
	UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal) (*domain.Shift, error)

	// CloseShift transitions the shift open -> closed, auto-recording a
	// shortage expense when the counted cash falls below the expected cash.
	CloseShift(ctx context.Context, shiftID string, closingCash decimal.Decimal) (*domain.Shift, error)

	// AddWithdrawal records the owner taking cash out of the till and
	// recomputes expected cash.
	AddWithdrawal(ctx context.Context, shiftID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error)
}

// ShiftReconcilerSvc defines the expected-cash recompute operations. Other
// services invoke these after inserting any cash-affecting record.
type ShiftReconcilerSvc interface {
	// CalculateExpectedCash computes (without persisting) the expected till
	// amount for a shift from its recorded movements.
	CalculateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error)

	// UpdateExpectedCash computes expected cash and persists it onto the shift.
	UpdateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error)

	// RequireOpenShift fetches a shift and fails with ErrShiftClosed when it
	// has already been closed.
	RequireOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
	ShiftReconcilerSvc
}
