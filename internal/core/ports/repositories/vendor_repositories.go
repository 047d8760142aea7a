package repositories

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a vendor by its unique identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves every vendor, ordered by name.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor inserts a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
}

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// ListPurchasesByShift retrieves every purchase recorded against a shift.
	ListPurchasesByShift(ctx context.Context, shiftID string) ([]domain.Purchase, error)

	// ListPurchasesByVendorInRange retrieves a vendor's purchases created
	// within [start, end].
	ListPurchasesByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data
type PurchaseWriter interface {
	// SavePurchase inserts a new purchase.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// VendorPaymentReader defines read operations for vendor payment data
type VendorPaymentReader interface {
	// ListPaymentsByShift retrieves every vendor payment recorded against a shift.
	ListPaymentsByShift(ctx context.Context, shiftID string) ([]domain.VendorPayment, error)

	// ListPaymentsByShiftIDs retrieves vendor payments across multiple shifts.
	ListPaymentsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.VendorPayment, error)

	// ListPaymentsByVendorInRange retrieves a vendor's payments created
	// within [start, end].
	ListPaymentsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.VendorPayment, error)
}

// VendorPaymentWriter defines write operations for vendor payment data
type VendorPaymentWriter interface {
	// SaveVendorPayment inserts a new vendor payment.
	SaveVendorPayment(ctx context.Context, payment domain.VendorPayment) error
}

// ReturnReader defines read operations for return data
type ReturnReader interface {
	// ListReturnsByShift retrieves every return recorded against a shift.
	ListReturnsByShift(ctx context.Context, shiftID string) ([]domain.Return, error)

	// ListReturnsByVendorInRange retrieves a vendor's returns created
	// within [start, end].
	ListReturnsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Return, error)
}

// ReturnWriter defines write operations for return data
type ReturnWriter interface {
	// SaveReturn inserts a new return.
	SaveReturn(ctx context.Context, ret domain.Return) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces.
// Purchases, payments and returns all reference a vendor, so the vendor
// repository owns their persistence.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
	PurchaseReader
	PurchaseWriter
	VendorPaymentReader
	VendorPaymentWriter
	ReturnReader
	ReturnWriter
}
