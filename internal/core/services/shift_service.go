package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shiftbook/shift_cash_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// shiftService implements the shift lifecycle: lazy creation with
// carried-forward opening cash, sale updates, expected-cash recomputes and
// the open -> closed transition with shortage auto-recording.
type shiftService struct {
	BaseService
	shiftRepo   portsrepo.ShiftRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	ownerLedger portssvc.OwnerLedgerSvcFacade
}

// NewShiftService creates a new shift service.
func NewShiftService(
	shiftRepo portsrepo.ShiftRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	vendorRepo portsrepo.VendorRepositoryFacade,
	ownerLedger portssvc.OwnerLedgerSvcFacade,
) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo:   shiftRepo,
		expenseRepo: expenseRepo,
		vendorRepo:  vendorRepo,
		ownerLedger: ownerLedger,
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// normalizeDate strips the time component so every (date, name) lookup uses
// the same calendar-day key.
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// GetShiftByID retrieves a single shift.
func (s *shiftService) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shift %s: %w", shiftID, err)
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %s: %w", shiftID, apperrors.ErrNotFound)
	}
	return shift, nil
}

// ListShiftsByDate retrieves every shift on a date in the explicit
// within-day ordering.
func (s *shiftService) ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error) {
	shifts, err := s.shiftRepo.ListShiftsByDate(ctx, normalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].ShiftName.Order() < shifts[j].ShiftName.Order()
	})
	return shifts, nil
}

// ListWithdrawalsByShift retrieves the withdrawals recorded against a shift.
func (s *shiftService) ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error) {
	if _, err := s.GetShiftByID(ctx, shiftID); err != nil {
		return nil, err
	}
	withdrawals, err := s.shiftRepo.ListWithdrawalsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

// GetOrCreateShift returns the shift for (date, name), creating it lazily.
// A new shift opens with the carried-forward cash of the latest preceding
// shift on the same date: its expected cash when computed, else its entered
// closing cash, else zero.
func (s *shiftService) GetOrCreateShift(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("%w: unknown shift name %q", apperrors.ErrValidation, name)
	}
	day := normalizeDate(date)

	existing, err := s.shiftRepo.FindShiftByDateAndName(ctx, day, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up shift: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	opening := decimal.Zero
	if prevNames := domain.ShiftNamesBefore(name); len(prevNames) > 0 {
		prevShifts, err := s.shiftRepo.FindShiftsByDateAndNames(ctx, day, prevNames)
		if err != nil {
			return nil, fmt.Errorf("failed to look up preceding shifts: %w", err)
		}
		if len(prevShifts) > 0 {
			sort.Slice(prevShifts, func(i, j int) bool {
				return prevShifts[i].ShiftName.Order() < prevShifts[j].ShiftName.Order()
			})
			opening = prevShifts[len(prevShifts)-1].CarriedForwardCash()
		}
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:     uuid.NewString(),
		Date:        day,
		ShiftName:   name,
		OpeningCash: opening,
		TotalSale:   decimal.Zero,
		Status:      domain.ShiftOpen,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		// Lost a create race for the same (date, name): the existing row wins.
		if errors.Is(err, apperrors.ErrDuplicate) {
			winner, ferr := s.shiftRepo.FindShiftByDateAndName(ctx, day, name)
			if ferr != nil {
				return nil, fmt.Errorf("failed to refetch shift after duplicate create: %w", ferr)
			}
			if winner == nil {
				return nil, fmt.Errorf("%w: shift %s %s vanished after duplicate create", apperrors.ErrNotFound, day.Format(time.DateOnly), name)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	s.LogInfo(ctx, "Shift created",
		slog.String("shift_id", shift.ShiftID),
		slog.String("shift_name", string(name)),
		slog.String("opening_cash", opening.String()))
	return &shift, nil
}

// UpdateTotalSale replaces the shift's total sale and synchronously recomputes
// expected cash. Writing the stored value again skips both writes.
func (s *shiftService) UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal) (*domain.Shift, error) {
	if totalSale.IsNegative() {
		return nil, fmt.Errorf("%w: total sale must not be negative", apperrors.ErrValidation)
	}
	shift, err := s.RequireOpenShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.TotalSale.Equal(totalSale) {
		return shift, nil
	}

	if err := s.shiftRepo.UpdateTotalSale(ctx, shiftID, totalSale, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update total sale: %w", err)
	}
	if _, err := s.UpdateExpectedCash(ctx, shiftID); err != nil {
		return nil, err
	}
	return s.GetShiftByID(ctx, shiftID)
}

// CalculateExpectedCash computes the expected till amount for a shift from
// its recorded movements, without persisting anything.
func (s *shiftService) CalculateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	shift, err := s.GetShiftByID(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}

	expenses, err := s.expenseRepo.ListExpensesByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list expenses: %w", err)
	}
	payments, err := s.vendorRepo.ListPaymentsByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	purchases, err := s.vendorRepo.ListPurchasesByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list purchases: %w", err)
	}
	withdrawals, err := s.shiftRepo.ListWithdrawalsByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list withdrawals: %w", err)
	}

	return accounting.ExpectedCash(shift.OpeningCash, shift.TotalSale, expenses, payments, purchases, withdrawals), nil
}

// UpdateExpectedCash computes expected cash and persists it onto the shift row.
func (s *shiftService) UpdateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	expected, err := s.CalculateExpectedCash(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.shiftRepo.UpdateExpectedCash(ctx, shiftID, expected, time.Now()); err != nil {
		return decimal.Zero, fmt.Errorf("failed to persist expected cash: %w", err)
	}
	return expected, nil
}

// RequireOpenShift fetches a shift and rejects mutations against closed ones.
func (s *shiftService) RequireOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.GetShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.IsClosed() {
		return nil, fmt.Errorf("shift %s: %w", shiftID, apperrors.ErrShiftClosed)
	}
	return shift, nil
}

// CloseShift transitions a shift open -> closed. When the counted cash falls
// short of the expected cash, the gap is auto-recorded as an expense against
// the reserved "Cash Shortage" head before the close is persisted, so the
// post-recompute expected cash equals the counted amount exactly.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, closingCash decimal.Decimal) (*domain.Shift, error) {
	if closingCash.IsNegative() {
		return nil, fmt.Errorf("%w: closing cash must not be negative", apperrors.ErrValidation)
	}
	shift, err := s.RequireOpenShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	expected := decimal.Zero
	if shift.ExpectedCash != nil {
		expected = *shift.ExpectedCash
	} else {
		expected, err = s.CalculateExpectedCash(ctx, shiftID)
		if err != nil {
			return nil, err
		}
	}

	if closingCash.LessThan(expected) {
		shortage := expected.Sub(closingCash)
		// Resolve the reserved head before touching any state: a missing head
		// must leave the shift open and unmodified.
		head, err := s.expenseRepo.FindExpenseHeadByName(ctx, domain.CashShortageHeadName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up shortage head: %w", err)
		}
		if head == nil {
			return nil, fmt.Errorf("%w: expense head %q is missing, cannot record shortage of %s",
				apperrors.ErrConfiguration, domain.CashShortageHeadName, shortage)
		}

		now := time.Now()
		shortageExpense := domain.Expense{
			ExpenseID:   uuid.NewString(),
			ShiftID:     shiftID,
			HeadID:      head.HeadID,
			Amount:      shortage,
			Source:      domain.SalesCash,
			Description: "Auto-recorded cash shortage",
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.expenseRepo.SaveExpense(ctx, shortageExpense); err != nil {
			return nil, fmt.Errorf("failed to record shortage expense: %w", err)
		}
		if _, err := s.UpdateExpectedCash(ctx, shiftID); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Cash shortage recorded",
			slog.String("shift_id", shiftID),
			slog.String("shortage", shortage.String()))
	}

	if err := s.shiftRepo.MarkShiftClosed(ctx, shiftID, closingCash, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to close shift: %w", err)
	}

	s.LogInfo(ctx, "Shift closed",
		slog.String("shift_id", shiftID),
		slog.String("closing_cash", closingCash.String()))
	return s.GetShiftByID(ctx, shiftID)
}

// AddWithdrawal records the owner taking cash out of the till. The till drops
// by the amount (expected cash recompute) and the owner ledger receives a
// matching negative entry.
func (s *shiftService) AddWithdrawal(ctx context.Context, shiftID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.RequireOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}

	now := time.Now()
	withdrawal := domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		ShiftID:      shiftID,
		Amount:       req.Amount,
		Description:  req.Description,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.shiftRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}
	if _, err := s.UpdateExpectedCash(ctx, shiftID); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Owner withdrawal from till"
	}
	if _, err := s.ownerLedger.RecordEntry(ctx, req.Amount.Neg(), description, &shiftID, now); err != nil {
		return nil, fmt.Errorf("failed to record owner ledger entry: %w", err)
	}

	return &withdrawal, nil
}
