package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/core/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func decEq(v string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(v)) })
}

// --- Test Suite ---
type ShiftServiceTestSuite struct {
	suite.Suite
	shiftRepo   *MockShiftRepository
	expenseRepo *MockExpenseRepository
	vendorRepo  *MockVendorRepository
	ownerLedger *MockOwnerLedgerService
	service     portssvc.ShiftSvcFacade

	testDate time.Time
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.shiftRepo = new(MockShiftRepository)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.vendorRepo = new(MockVendorRepository)
	suite.ownerLedger = new(MockOwnerLedgerService)
	suite.service = services.NewShiftService(suite.shiftRepo, suite.expenseRepo, suite.vendorRepo, suite.ownerLedger)
	suite.testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// expectEmptyMovements stubs the four movement lists used by the
// expected-cash recompute to return nothing.
func (suite *ShiftServiceTestSuite) expectEmptyMovements(ctx context.Context, shiftID string) {
	suite.expenseRepo.On("ListExpensesByShift", ctx, shiftID).Return([]domain.Expense{}, nil)
	suite.vendorRepo.On("ListPaymentsByShift", ctx, shiftID).Return([]domain.VendorPayment{}, nil)
	suite.vendorRepo.On("ListPurchasesByShift", ctx, shiftID).Return([]domain.Purchase{}, nil)
	suite.shiftRepo.On("ListWithdrawalsByShift", ctx, shiftID).Return([]domain.Withdrawal{}, nil)
}

// --- GetOrCreateShift ---

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_Existing() {
	ctx := context.Background()
	existing := &domain.Shift{ShiftID: uuid.NewString(), Date: suite.testDate, ShiftName: domain.Morning, Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(existing, nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Morning)

	suite.Require().NoError(err)
	suite.Equal(existing, shift)
	suite.shiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_FirstOfDay_OpensWithZero() {
	ctx := context.Background()

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.ShiftName == domain.Morning && s.OpeningCash.IsZero() && s.Status == domain.ShiftOpen && s.TotalSale.IsZero()
	})).Return(nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Morning)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.True(shift.OpeningCash.IsZero())
	// Morning has no predecessors, so there is no previous-shift lookup.
	suite.shiftRepo.AssertNotCalled(suite.T(), "FindShiftsByDateAndNames", mock.Anything, mock.Anything, mock.Anything)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_CarriesExpectedCashForward() {
	ctx := context.Background()
	morning := domain.Shift{
		ShiftID:      uuid.NewString(),
		Date:         suite.testDate,
		ShiftName:    domain.Morning,
		ExpectedCash: decPtr("4800"),
		Status:       domain.ShiftOpen,
	}

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Evening).Return(nil, nil).Once()
	suite.shiftRepo.On("FindShiftsByDateAndNames", ctx, suite.testDate, []domain.ShiftName{domain.Morning}).Return([]domain.Shift{morning}, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.ShiftName == domain.Evening && s.OpeningCash.Equal(dec("4800"))
	})).Return(nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Evening)

	suite.Require().NoError(err)
	suite.True(shift.OpeningCash.Equal(dec("4800")))
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_FallsBackToClosingCash() {
	ctx := context.Background()
	// No recompute ever ran on the morning shift, but it was closed with a
	// counted amount. That amount carries forward.
	morning := domain.Shift{
		ShiftID:            uuid.NewString(),
		Date:               suite.testDate,
		ShiftName:          domain.Morning,
		ClosingCashEntered: decPtr("1250.50"),
		Status:             domain.ShiftClosed,
	}

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Evening).Return(nil, nil).Once()
	suite.shiftRepo.On("FindShiftsByDateAndNames", ctx, suite.testDate, []domain.ShiftName{domain.Morning}).Return([]domain.Shift{morning}, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Evening)

	suite.Require().NoError(err)
	suite.True(shift.OpeningCash.Equal(dec("1250.50")))
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_NightPicksLatestPredecessor() {
	ctx := context.Background()
	morning := domain.Shift{ShiftID: uuid.NewString(), ShiftName: domain.Morning, ExpectedCash: decPtr("100")}
	evening := domain.Shift{ShiftID: uuid.NewString(), ShiftName: domain.Evening, ExpectedCash: decPtr("900")}

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Night).Return(nil, nil).Once()
	// Returned out of order; the service must pick by shift ordering, not slice position.
	suite.shiftRepo.On("FindShiftsByDateAndNames", ctx, suite.testDate, []domain.ShiftName{domain.Morning, domain.Evening}).Return([]domain.Shift{evening, morning}, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.OpeningCash.Equal(dec("900"))
	})).Return(nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Night)

	suite.Require().NoError(err)
	suite.True(shift.OpeningCash.Equal(dec("900")))
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_DuplicateRaceRefetches() {
	ctx := context.Background()
	winner := &domain.Shift{ShiftID: uuid.NewString(), Date: suite.testDate, ShiftName: domain.Morning}

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrDuplicate).Once()
	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(winner, nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Morning)

	suite.Require().NoError(err)
	suite.Equal(winner, shift)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_DuplicateRaceRefetchMissing() {
	ctx := context.Background()

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrDuplicate).Once()
	// The winning row disappeared between the duplicate insert and the refetch.
	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, nil).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Morning)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_DuplicateRaceRefetchFails() {
	ctx := context.Background()
	refetchErr := errors.New("connection reset")

	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrDuplicate).Once()
	suite.shiftRepo.On("FindShiftByDateAndName", ctx, suite.testDate, domain.Morning).Return(nil, refetchErr).Once()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.Morning)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, refetchErr)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateShift_InvalidName() {
	ctx := context.Background()

	shift, err := suite.service.GetOrCreateShift(ctx, suite.testDate, domain.ShiftName("Afternoon"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateTotalSale ---

func (suite *ShiftServiceTestSuite) TestUpdateTotalSale_RecomputesExpectedCash() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	before := &domain.Shift{ShiftID: shiftID, OpeningCash: dec("0"), TotalSale: dec("0"), Status: domain.ShiftOpen}
	after := &domain.Shift{ShiftID: shiftID, OpeningCash: dec("0"), TotalSale: dec("5000"), Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(before, nil).Once()
	suite.shiftRepo.On("UpdateTotalSale", ctx, shiftID, decEq("5000"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(after, nil)
	suite.expectEmptyMovements(ctx, shiftID)
	suite.shiftRepo.On("UpdateExpectedCash", ctx, shiftID, decEq("5000"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	shift, err := suite.service.UpdateTotalSale(ctx, shiftID, dec("5000"))

	suite.Require().NoError(err)
	suite.True(shift.TotalSale.Equal(dec("5000")))
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestUpdateTotalSale_SameValueIsNoOp() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, TotalSale: dec("5000"), Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()

	got, err := suite.service.UpdateTotalSale(ctx, shiftID, dec("5000"))

	suite.Require().NoError(err)
	suite.Equal(shift, got)
	suite.shiftRepo.AssertNotCalled(suite.T(), "UpdateTotalSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.shiftRepo.AssertNotCalled(suite.T(), "UpdateExpectedCash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestUpdateTotalSale_NegativeRejected() {
	ctx := context.Background()

	shift, err := suite.service.UpdateTotalSale(ctx, uuid.NewString(), dec("-1"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestUpdateTotalSale_ClosedShiftRejected() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	closed := &domain.Shift{ShiftID: shiftID, Status: domain.ShiftClosed}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(closed, nil).Once()

	shift, err := suite.service.UpdateTotalSale(ctx, shiftID, dec("100"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrShiftClosed)
}

// --- CalculateExpectedCash ---

func (suite *ShiftServiceTestSuite) TestCalculateExpectedCash_AllMovementKinds() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, OpeningCash: dec("1000"), TotalSale: dec("7000"), Status: domain.ShiftOpen}
	salesCash := domain.SalesCash
	ownerPocket := domain.OwnerPocket

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.expenseRepo.On("ListExpensesByShift", ctx, shiftID).Return([]domain.Expense{
		{Amount: dec("300"), Source: domain.SalesCash},
		{Amount: dec("999"), Source: domain.OwnerPocket}, // owner funded, till untouched
	}, nil).Once()
	suite.vendorRepo.On("ListPaymentsByShift", ctx, shiftID).Return([]domain.VendorPayment{
		{Amount: dec("450"), Source: domain.SalesCash},
	}, nil).Once()
	suite.vendorRepo.On("ListPurchasesByShift", ctx, shiftID).Return([]domain.Purchase{
		{Amount: dec("600"), PaymentType: domain.PaymentCash, SourceIfCash: &salesCash},
		{Amount: dec("800"), PaymentType: domain.PaymentCredit},                          // credit, no cash moved
		{Amount: dec("700"), PaymentType: domain.PaymentCash, SourceIfCash: &ownerPocket}, // owner funded
	}, nil).Once()
	suite.shiftRepo.On("ListWithdrawalsByShift", ctx, shiftID).Return([]domain.Withdrawal{
		{Amount: dec("500")},
	}, nil).Once()

	expected, err := suite.service.CalculateExpectedCash(ctx, shiftID)

	suite.Require().NoError(err)
	// 1000 + 7000 - 300 - 450 - 600 - 500
	suite.True(expected.Equal(dec("6150")), "got %s", expected)
}

// --- CloseShift ---

func (suite *ShiftServiceTestSuite) TestCloseShift_NoShortage() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	open := &domain.Shift{ShiftID: shiftID, ExpectedCash: decPtr("4800"), Status: domain.ShiftOpen}
	closed := &domain.Shift{ShiftID: shiftID, ExpectedCash: decPtr("4800"), ClosingCashEntered: decPtr("4800"), Status: domain.ShiftClosed}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(open, nil).Once()
	suite.shiftRepo.On("MarkShiftClosed", ctx, shiftID, decEq("4800"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(closed, nil).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, dec("4800"))

	suite.Require().NoError(err)
	suite.True(shift.IsClosed())
	suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_OverageClosesWithoutExpense() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	open := &domain.Shift{ShiftID: shiftID, ExpectedCash: decPtr("4800"), Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(open, nil)
	suite.shiftRepo.On("MarkShiftClosed", ctx, shiftID, decEq("5000"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.CloseShift(ctx, shiftID, dec("5000"))

	suite.Require().NoError(err)
	suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_ShortageAutoRecordsExpense() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	open := &domain.Shift{ShiftID: shiftID, OpeningCash: dec("0"), TotalSale: dec("5000"), ExpectedCash: decPtr("5000"), Status: domain.ShiftOpen}
	head := &domain.ExpenseHead{HeadID: uuid.NewString(), Name: domain.CashShortageHeadName}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(open, nil)
	suite.expenseRepo.On("FindExpenseHeadByName", ctx, domain.CashShortageHeadName).Return(head, nil).Once()
	suite.expenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ShiftID == shiftID &&
			e.HeadID == head.HeadID &&
			e.Amount.Equal(dec("200")) &&
			e.Source == domain.SalesCash &&
			e.Description == "Auto-recorded cash shortage"
	})).Return(nil).Once()
	// Recompute after the shortage expense lands on the new total.
	suite.expenseRepo.On("ListExpensesByShift", ctx, shiftID).Return([]domain.Expense{
		{Amount: dec("200"), Source: domain.SalesCash},
	}, nil).Once()
	suite.vendorRepo.On("ListPaymentsByShift", ctx, shiftID).Return([]domain.VendorPayment{}, nil).Once()
	suite.vendorRepo.On("ListPurchasesByShift", ctx, shiftID).Return([]domain.Purchase{}, nil).Once()
	suite.shiftRepo.On("ListWithdrawalsByShift", ctx, shiftID).Return([]domain.Withdrawal{}, nil).Once()
	suite.shiftRepo.On("UpdateExpectedCash", ctx, shiftID, decEq("4800"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.shiftRepo.On("MarkShiftClosed", ctx, shiftID, decEq("4800"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.CloseShift(ctx, shiftID, dec("4800"))

	suite.Require().NoError(err)
	suite.expenseRepo.AssertExpectations(suite.T())
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_MissingShortageHeadAborts() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	open := &domain.Shift{ShiftID: shiftID, ExpectedCash: decPtr("5000"), Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(open, nil).Once()
	suite.expenseRepo.On("FindExpenseHeadByName", ctx, domain.CashShortageHeadName).Return(nil, nil).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, dec("4800"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	// Nothing was written: the shift stays open and no expense exists.
	suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertNotCalled(suite.T(), "MarkShiftClosed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AlreadyClosedRejected() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	closed := &domain.Shift{ShiftID: shiftID, Status: domain.ShiftClosed}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(closed, nil).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, dec("100"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrShiftClosed)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_NotFound() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(nil, nil).Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, dec("100"))

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AddWithdrawal ---

func (suite *ShiftServiceTestSuite) TestAddWithdrawal_RecomputesAndMirrorsToOwnerLedger() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	open := &domain.Shift{ShiftID: shiftID, OpeningCash: dec("0"), TotalSale: dec("5000"), Status: domain.ShiftOpen}

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(open, nil)
	suite.shiftRepo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.Withdrawal) bool {
		return w.ShiftID == shiftID && w.Amount.Equal(dec("500")) && w.Description == "school fees"
	})).Return(nil).Once()
	suite.expenseRepo.On("ListExpensesByShift", ctx, shiftID).Return([]domain.Expense{}, nil).Once()
	suite.vendorRepo.On("ListPaymentsByShift", ctx, shiftID).Return([]domain.VendorPayment{}, nil).Once()
	suite.vendorRepo.On("ListPurchasesByShift", ctx, shiftID).Return([]domain.Purchase{}, nil).Once()
	suite.shiftRepo.On("ListWithdrawalsByShift", ctx, shiftID).Return([]domain.Withdrawal{{Amount: dec("500")}}, nil).Once()
	suite.shiftRepo.On("UpdateExpectedCash", ctx, shiftID, decEq("4500"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.ownerLedger.On("RecordEntry", ctx, decEq("-500"), "school fees", &shiftID, mock.AnythingOfType("time.Time")).
		Return(&domain.OwnerLedgerEntry{}, nil).Once()

	withdrawal, err := suite.service.AddWithdrawal(ctx, shiftID, dto.CreateWithdrawalRequest{Amount: dec("500"), Description: "school fees"})

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.ownerLedger.AssertExpectations(suite.T())
	suite.shiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestAddWithdrawal_NonPositiveRejected() {
	ctx := context.Background()

	withdrawal, err := suite.service.AddWithdrawal(ctx, uuid.NewString(), dto.CreateWithdrawalRequest{Amount: dec("0")})

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestShiftService(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
