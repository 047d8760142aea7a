package repositories

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindShiftByDateAndName retrieves the shift for an exact (date, name) pair,
	// or nil when it does not exist.
	FindShiftByDateAndName(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error)

	// FindShiftsByDateAndNames retrieves the shifts on a date whose names are in
	// the given set. Used for the previous-shift lookup at creation time.
	FindShiftsByDateAndNames(ctx context.Context, date time.Time, names []domain.ShiftName) ([]domain.Shift, error)

	// ListShiftsByDate retrieves every shift recorded on a date.
	ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error)

	// ListShiftsInRange retrieves shifts whose date falls within [start, end].
	ListShiftsInRange(ctx context.Context, start, end time.Time) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift inserts a new shift row.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// UpdateTotalSale persists a new total sale figure for a shift.
	UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal, updatedAt time.Time) error

	// UpdateExpectedCash persists the recomputed expected cash onto the shift row.
	UpdateExpectedCash(ctx context.Context, shiftID string, expectedCash decimal.Decimal, updatedAt time.Time) error

	// MarkShiftClosed persists the entered closing cash, the closed status and
	// the close timestamp.
	MarkShiftClosed(ctx context.Context, shiftID string, closingCash decimal.Decimal, closedAt time.Time) error
}

// WithdrawalReader defines read operations for withdrawal data
type WithdrawalReader interface {
	// ListWithdrawalsByShift retrieves every withdrawal recorded against a shift.
	ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error)

	// ListWithdrawalsByShiftIDs retrieves withdrawals across multiple shifts.
	ListWithdrawalsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Withdrawal, error)
}

// WithdrawalWriter defines write operations for withdrawal data
type WithdrawalWriter interface {
	// SaveWithdrawal inserts a new withdrawal row.
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces.
// Withdrawals are owned by shifts, so they live behind the same facade.
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
	WithdrawalReader
	WithdrawalWriter
}
