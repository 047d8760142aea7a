package services_test

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryFacade = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindShiftByDateAndName(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error) {
	args := m.Called(ctx, date, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindShiftsByDateAndNames(ctx context.Context, date time.Time, names []domain.ShiftName) ([]domain.Shift, error) {
	args := m.Called(ctx, date, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsInRange(ctx context.Context, start, end time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, shiftID, totalSale, updatedAt)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateExpectedCash(ctx context.Context, shiftID string, expectedCash decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, shiftID, expectedCash, updatedAt)
	return args.Error(0)
}

func (m *MockShiftRepository) MarkShiftClosed(ctx context.Context, shiftID string, closingCash decimal.Decimal, closedAt time.Time) error {
	args := m.Called(ctx, shiftID, closingCash, closedAt)
	return args.Error(0)
}

func (m *MockShiftRepository) ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockShiftRepository) ListWithdrawalsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, shiftIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockShiftRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseHeadByID(ctx context.Context, headID string) (*domain.ExpenseHead, error) {
	args := m.Called(ctx, headID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseHead), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseHeadByName(ctx context.Context, name string) (*domain.ExpenseHead, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseHead), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenseHeads(ctx context.Context) ([]domain.ExpenseHead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseHead), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpenseHead(ctx context.Context, head domain.ExpenseHead) error {
	args := m.Called(ctx, head)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Expense, error) {
	args := m.Called(ctx, shiftIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

var _ portsrepo.VendorRepositoryFacade = (*MockVendorRepository)(nil)

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) ListPurchasesByShift(ctx context.Context, shiftID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockVendorRepository) ListPurchasesByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Purchase, error) {
	args := m.Called(ctx, vendorID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockVendorRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockVendorRepository) ListPaymentsByShift(ctx context.Context, shiftID string) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}

func (m *MockVendorRepository) ListPaymentsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, shiftIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}

func (m *MockVendorRepository) ListPaymentsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, vendorID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}

func (m *MockVendorRepository) SaveVendorPayment(ctx context.Context, payment domain.VendorPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockVendorRepository) ListReturnsByShift(ctx context.Context, shiftID string) ([]domain.Return, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Return), args.Error(1)
}

func (m *MockVendorRepository) ListReturnsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Return, error) {
	args := m.Called(ctx, vendorID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Return), args.Error(1)
}

func (m *MockVendorRepository) SaveReturn(ctx context.Context, ret domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

// --- Mock OwnerLedgerRepository ---
type MockOwnerLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.OwnerLedgerRepositoryFacade = (*MockOwnerLedgerRepository)(nil)

func (m *MockOwnerLedgerRepository) ListOwnerLedgerEntries(ctx context.Context) ([]domain.OwnerLedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerLedgerEntry), args.Error(1)
}

func (m *MockOwnerLedgerRepository) SaveOwnerLedgerEntry(ctx context.Context, entry domain.OwnerLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ShiftReconciler ---
type MockShiftReconciler struct {
	mock.Mock
}

var _ portssvc.ShiftReconcilerSvc = (*MockShiftReconciler)(nil)

func (m *MockShiftReconciler) CalculateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockShiftReconciler) UpdateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockShiftReconciler) RequireOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

// --- Mock OwnerLedgerService ---
type MockOwnerLedgerService struct {
	mock.Mock
}

var _ portssvc.OwnerLedgerSvcFacade = (*MockOwnerLedgerService)(nil)

func (m *MockOwnerLedgerService) RecordEntry(ctx context.Context, amount decimal.Decimal, description string, shiftID *string, at time.Time) (*domain.OwnerLedgerEntry, error) {
	args := m.Called(ctx, amount, description, shiftID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerLedgerEntry), args.Error(1)
}

func (m *MockOwnerLedgerService) ListEntries(ctx context.Context) ([]domain.OwnerLedgerLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerLedgerLine), args.Error(1)
}
