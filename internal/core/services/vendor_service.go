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
	"github.com/shiftbook/shift_cash_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// vendorService implements vendor management, vendor-facing shift movements
// and the vendor statement builder. Cash-moving inserts trigger a synchronous
// expected-cash recompute; owner-pocket ones mirror into the owner ledger.
type vendorService struct {
	BaseService
	repo        portsrepo.VendorRepositoryFacade
	reconciler  portssvc.ShiftReconcilerSvc
	ownerLedger portssvc.OwnerLedgerSvcFacade
}

// NewVendorService creates a new vendor service.
func NewVendorService(
	repo portsrepo.VendorRepositoryFacade,
	reconciler portssvc.ShiftReconcilerSvc,
	ownerLedger portssvc.OwnerLedgerSvcFacade,
) portssvc.VendorSvcFacade {
	return &vendorService{
		repo:        repo,
		reconciler:  reconciler,
		ownerLedger: ownerLedger,
	}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor creates a new vendor with its signed opening balance.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		VendorID:       uuid.NewString(),
		Name:           req.Name,
		Contact:        req.Contact,
		OpeningBalance: req.OpeningBalance,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}
	return &vendor, nil
}

// ListVendors retrieves every vendor.
func (s *vendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

// requireVendor fetches a vendor or fails with ErrNotFound.
func (s *vendorService) requireVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.repo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s: %w", vendorID, apperrors.ErrNotFound)
	}
	return vendor, nil
}

// AddPurchase records goods bought from a vendor during an open shift.
// Credit purchases and owner-funded cash purchases leave the till untouched;
// only cash purchases funded from sales cash trigger a recompute.
func (s *vendorService) AddPurchase(ctx context.Context, shiftID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: purchase amount must be positive", apperrors.ErrValidation)
	}
	if !req.PaymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, req.PaymentType)
	}
	if req.PaymentType == domain.PaymentCash {
		if req.SourceIfCash == nil || !req.SourceIfCash.IsValid() {
			return nil, fmt.Errorf("%w: cash purchases require a funding source", apperrors.ErrValidation)
		}
	} else {
		// Credit purchases carry no funding source; drop any that slipped in.
		req.SourceIfCash = nil
	}
	if _, err := s.reconciler.RequireOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}
	vendor, err := s.requireVendor(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:   uuid.NewString(),
		ShiftID:      shiftID,
		VendorID:     vendor.VendorID,
		VendorName:   vendor.Name,
		Amount:       req.Amount,
		PaymentType:  req.PaymentType,
		SourceIfCash: req.SourceIfCash,
		Description:  req.Description,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SavePurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}
	if purchase.ReducesTill() {
		if _, err := s.reconciler.UpdateExpectedCash(ctx, shiftID); err != nil {
			return nil, err
		}
	}
	if req.PaymentType == domain.PaymentCash && *req.SourceIfCash == domain.OwnerPocket {
		description := fmt.Sprintf("Owner-funded purchase from %s", vendor.Name)
		if _, err := s.ownerLedger.RecordEntry(ctx, req.Amount, description, &shiftID, now); err != nil {
			return nil, fmt.Errorf("failed to record owner ledger entry: %w", err)
		}
	}

	s.LogDebug(ctx, "Purchase recorded",
		slog.String("shift_id", shiftID),
		slog.String("vendor", vendor.Name),
		slog.String("payment_type", string(req.PaymentType)))
	return &purchase, nil
}

// ListPurchasesByShift retrieves a shift's purchases with vendor names resolved.
func (s *vendorService) ListPurchasesByShift(ctx context.Context, shiftID string) ([]domain.Purchase, error) {
	purchases, err := s.repo.ListPurchasesByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	names, err := s.vendorNamesByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range purchases {
		purchases[i].VendorName = names[purchases[i].VendorID]
	}
	return purchases, nil
}

// AddVendorPayment records the store paying down vendor debt during an open
// shift. Sales-cash payments lower the till; owner-pocket ones mirror into
// the owner ledger.
func (s *vendorService) AddVendorPayment(ctx context.Context, shiftID string, req dto.CreateVendorPaymentRequest) (*domain.VendorPayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if !req.Source.IsValid() {
		return nil, fmt.Errorf("%w: unknown funding source %q", apperrors.ErrValidation, req.Source)
	}
	if _, err := s.reconciler.RequireOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}
	vendor, err := s.requireVendor(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.VendorPayment{
		PaymentID:   uuid.NewString(),
		ShiftID:     shiftID,
		VendorID:    vendor.VendorID,
		VendorName:  vendor.Name,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveVendorPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save vendor payment: %w", err)
	}
	if _, err := s.reconciler.UpdateExpectedCash(ctx, shiftID); err != nil {
		return nil, err
	}
	if req.Source == domain.OwnerPocket {
		description := fmt.Sprintf("Owner-funded payment to %s", vendor.Name)
		if _, err := s.ownerLedger.RecordEntry(ctx, req.Amount, description, &shiftID, now); err != nil {
			return nil, fmt.Errorf("failed to record owner ledger entry: %w", err)
		}
	}

	return &payment, nil
}

// ListPaymentsByShift retrieves a shift's vendor payments with vendor names resolved.
func (s *vendorService) ListPaymentsByShift(ctx context.Context, shiftID string) ([]domain.VendorPayment, error) {
	payments, err := s.repo.ListPaymentsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	names, err := s.vendorNamesByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		payments[i].VendorName = names[payments[i].VendorID]
	}
	return payments, nil
}

// AddReturn records goods handed back to a vendor during an open shift.
// Returns lower the vendor balance but never move cash, so there is no
// recompute and no owner ledger entry.
func (s *vendorService) AddReturn(ctx context.Context, shiftID string, req dto.CreateReturnRequest) (*domain.Return, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: return amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.reconciler.RequireOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}
	vendor, err := s.requireVendor(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ret := domain.Return{
		ReturnID:    uuid.NewString(),
		ShiftID:     shiftID,
		VendorID:    vendor.VendorID,
		VendorName:  vendor.Name,
		Amount:      req.Amount,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.repo.SaveReturn(ctx, ret); err != nil {
		return nil, fmt.Errorf("failed to save return: %w", err)
	}
	return &ret, nil
}

// ListReturnsByShift retrieves a shift's returns with vendor names resolved.
func (s *vendorService) ListReturnsByShift(ctx context.Context, shiftID string) ([]domain.Return, error) {
	returns, err := s.repo.ListReturnsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}
	names, err := s.vendorNamesByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range returns {
		returns[i].VendorName = names[returns[i].VendorID]
	}
	return returns, nil
}

// BuildVendorLedger reconstructs the vendor statement over [start, end] from
// raw transaction history. Nothing about the statement is persisted.
func (s *vendorService) BuildVendorLedger(ctx context.Context, vendorID string, start, end time.Time) (*domain.VendorLedger, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	vendor, err := s.requireVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	purchases, err := s.repo.ListPurchasesByVendorInRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	payments, err := s.repo.ListPaymentsByVendorInRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	returns, err := s.repo.ListReturnsByVendorInRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}

	txns := accounting.FlattenVendorHistory(purchases, payments, returns)
	rows := accounting.BuildVendorLedgerRows(vendor.OpeningBalance, start, txns)

	closing := vendor.OpeningBalance
	if len(rows) > 0 {
		closing = rows[len(rows)-1].Balance
	}
	return &domain.VendorLedger{
		VendorID:       vendor.VendorID,
		VendorName:     vendor.Name,
		StartDate:      start,
		EndDate:        end,
		Rows:           rows,
		ClosingBalance: closing,
	}, nil
}

// vendorNamesByID builds a vendor-id to name lookup for list enrichment.
func (s *vendorService) vendorNamesByID(ctx context.Context) (map[string]string, error) {
	vendors, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	names := make(map[string]string, len(vendors))
	for _, v := range vendors {
		names[v.VendorID] = v.Name
	}
	return names, nil
}
