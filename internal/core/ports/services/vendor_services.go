package services

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/dto"
)

// VendorManagerSvc defines operations for managing vendors
type VendorManagerSvc interface {
	// CreateVendor creates a new vendor with its signed opening balance.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)

	// ListVendors retrieves every vendor.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorTransactionSvc defines operations for recording vendor-facing
// movements against shifts
type VendorTransactionSvc interface {
	// AddPurchase records a purchase. Cash purchases funded from sales cash
	// trigger an expected-cash recompute; owner-pocket ones append a positive
	// owner ledger entry.
	AddPurchase(ctx context.Context, shiftID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// ListPurchasesByShift retrieves a shift's purchases enriched with vendor names.
	ListPurchasesByShift(ctx context.Context, shiftID string) ([]domain.Purchase, error)

	// AddVendorPayment records the store paying down vendor debt and triggers
	// the same recompute/owner-ledger coupling as purchases.
	AddVendorPayment(ctx context.Context, shiftID string, req dto.CreateVendorPaymentRequest) (*domain.VendorPayment, error)

	// ListPaymentsByShift retrieves a shift's vendor payments enriched with vendor names.
	ListPaymentsByShift(ctx context.Context, shiftID string) ([]domain.VendorPayment, error)

	// AddReturn records goods returned to a vendor. Returns never move cash.
	AddReturn(ctx context.Context, shiftID string, req dto.CreateReturnRequest) (*domain.Return, error)

	// ListReturnsByShift retrieves a shift's returns enriched with vendor names.
	ListReturnsByShift(ctx context.Context, shiftID string) ([]domain.Return, error)
}

// VendorLedgerSvc defines the vendor statement builder
type VendorLedgerSvc interface {
	// BuildVendorLedger reconstructs the vendor's running-balance statement
	// over [start, end] from raw transaction history.
	BuildVendorLedger(ctx context.Context, vendorID string, start, end time.Time) (*domain.VendorLedger, error)
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorManagerSvc
	VendorTransactionSvc
	VendorLedgerSvc
}
