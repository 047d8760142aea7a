package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/google/uuid"
)

// expenseService implements expense head management and expense recording.
// Every expense insert triggers a synchronous expected-cash recompute on its
// shift, and owner-pocket expenses mirror into the owner ledger.
type expenseService struct {
	BaseService
	repo        portsrepo.ExpenseRepositoryFacade
	reconciler  portssvc.ShiftReconcilerSvc
	ownerLedger portssvc.OwnerLedgerSvcFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	repo portsrepo.ExpenseRepositoryFacade,
	reconciler portssvc.ShiftReconcilerSvc,
	ownerLedger portssvc.OwnerLedgerSvcFacade,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		repo:        repo,
		reconciler:  reconciler,
		ownerLedger: ownerLedger,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpenseHead creates a new named expense category. Names are unique;
// creating an existing one fails with ErrDuplicate from the store.
func (s *expenseService) CreateExpenseHead(ctx context.Context, req dto.CreateExpenseHeadRequest) (*domain.ExpenseHead, error) {
	now := time.Now()
	head := domain.ExpenseHead{
		HeadID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveExpenseHead(ctx, head); err != nil {
		return nil, fmt.Errorf("failed to save expense head: %w", err)
	}
	return &head, nil
}

// ListExpenseHeads retrieves every expense head.
func (s *expenseService) ListExpenseHeads(ctx context.Context) ([]domain.ExpenseHead, error) {
	heads, err := s.repo.ListExpenseHeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense heads: %w", err)
	}
	return heads, nil
}

// AddExpense records an expense against an open shift.
func (s *expenseService) AddExpense(ctx context.Context, shiftID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	if !req.Source.IsValid() {
		return nil, fmt.Errorf("%w: unknown funding source %q", apperrors.ErrValidation, req.Source)
	}
	if _, err := s.reconciler.RequireOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}
	head, err := s.repo.FindExpenseHeadByID(ctx, req.HeadID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up expense head: %w", err)
	}
	if head == nil {
		return nil, fmt.Errorf("expense head %s: %w", req.HeadID, apperrors.ErrNotFound)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ShiftID:     shiftID,
		HeadID:      head.HeadID,
		HeadName:    head.Name,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	if _, err := s.reconciler.UpdateExpectedCash(ctx, shiftID); err != nil {
		return nil, err
	}

	if req.Source == domain.OwnerPocket {
		description := fmt.Sprintf("Owner-funded expense: %s", head.Name)
		if _, err := s.ownerLedger.RecordEntry(ctx, req.Amount, description, &shiftID, now); err != nil {
			return nil, fmt.Errorf("failed to record owner ledger entry: %w", err)
		}
	}

	s.LogDebug(ctx, "Expense recorded",
		slog.String("shift_id", shiftID),
		slog.String("head", head.Name),
		slog.String("amount", req.Amount.String()))
	return &expense, nil
}

// ListExpensesByShift retrieves a shift's expenses with head names resolved.
func (s *expenseService) ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	expenses, err := s.repo.ListExpensesByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if err := s.enrichHeadNames(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// enrichHeadNames resolves head names onto expenses in place.
func (s *expenseService) enrichHeadNames(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	heads, err := s.repo.ListExpenseHeads(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expense heads: %w", err)
	}
	byID := make(map[string]string, len(heads))
	for _, h := range heads {
		byID[h.HeadID] = h.Name
	}
	for i := range expenses {
		expenses[i].HeadName = byID[expenses[i].HeadID]
	}
	return nil
}
