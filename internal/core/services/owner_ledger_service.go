package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ownerLedgerService implements the append-only owner ledger. Running
// balances are recomputed on every read, never stored.
type ownerLedgerService struct {
	BaseService
	repo portsrepo.OwnerLedgerRepositoryFacade
}

// NewOwnerLedgerService creates a new owner ledger service.
func NewOwnerLedgerService(repo portsrepo.OwnerLedgerRepositoryFacade) portssvc.OwnerLedgerSvcFacade {
	return &ownerLedgerService{repo: repo}
}

var _ portssvc.OwnerLedgerSvcFacade = (*ownerLedgerService)(nil)

// RecordEntry appends a signed ledger entry. Zero amounts are rejected; a
// movement that does not change the owner's position has no place here.
func (s *ownerLedgerService) RecordEntry(ctx context.Context, amount decimal.Decimal, description string, shiftID *string, at time.Time) (*domain.OwnerLedgerEntry, error) {
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: ledger amount must not be zero", apperrors.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: ledger description is required", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.OwnerLedgerEntry{
		EntryID:         uuid.NewString(),
		Amount:          amount,
		Description:     description,
		ShiftID:         shiftID,
		TransactionDate: at,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveOwnerLedgerEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save owner ledger entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns every ledger entry with its running balance.
func (s *ownerLedgerService) ListEntries(ctx context.Context) ([]domain.OwnerLedgerLine, error) {
	entries, err := s.repo.ListOwnerLedgerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner ledger entries: %w", err)
	}

	balances := accounting.OwnerRunningBalance(entries)
	lines := make([]domain.OwnerLedgerLine, len(entries))
	for i, entry := range entries {
		lines[i] = domain.OwnerLedgerLine{OwnerLedgerEntry: entry, RunningBalance: balances[i]}
	}
	return lines, nil
}
