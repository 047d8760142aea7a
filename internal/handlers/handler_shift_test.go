package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shiftbook/shift_cash_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}
func (m *MockShiftService) ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}
func (m *MockShiftService) GetOrCreateShift(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error) {
	args := m.Called(ctx, date, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, totalSale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, closingCash decimal.Decimal) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, closingCash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) AddWithdrawal(ctx context.Context, shiftID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	args := m.Called(ctx, shiftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}
func (m *MockShiftService) CalculateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockShiftService) UpdateExpectedCash(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockShiftService) RequireOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

// --- Test Suite ---
type ShiftHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockShiftService *MockShiftService
}

func (suite *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockShiftService = new(MockShiftService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterShiftRoutes(v1, suite.mockShiftService)
}

// dateMatches matches a service argument against the given YYYY-MM-DD date.
func dateMatches(value string) interface{} {
	want, _ := time.Parse(dto.DateOnly, value)
	return mock.MatchedBy(func(d time.Time) bool {
		return d.Equal(want)
	})
}

func (suite *ShiftHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ShiftHandlerTestSuite) TestGetOrCreateShift_Success() {
	expected := &domain.Shift{
		ShiftID:     uuid.NewString(),
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ShiftName:   domain.Morning,
		OpeningCash: decimal.NewFromInt(1000),
		TotalSale:   decimal.Zero,
		Status:      domain.ShiftOpen,
	}

	suite.mockShiftService.On("GetOrCreateShift",
		mock.Anything,
		dateMatches("2025-06-01"),
		domain.Morning,
	).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/shifts", dto.GetOrCreateShiftRequest{
		Date:      "2025-06-01",
		ShiftName: domain.Morning,
	})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ShiftResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ShiftID, resp.ShiftID)
	suite.Equal("2025-06-01", resp.Date)
	suite.Equal(domain.Morning, resp.ShiftName)
	suite.True(resp.OpeningCash.Equal(decimal.NewFromInt(1000)))

	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestGetOrCreateShift_UnknownShiftNameRejected() {
	w := suite.postJSON("/api/v1/shifts", gin.H{
		"date":      "2025-06-01",
		"shiftName": "Afternoon",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockShiftService.AssertNotCalled(suite.T(), "GetOrCreateShift")
}

func (suite *ShiftHandlerTestSuite) TestListShiftsByDate_MissingDateRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/shifts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockShiftService.AssertNotCalled(suite.T(), "ListShiftsByDate")
}

func (suite *ShiftHandlerTestSuite) TestGetShift_NotFound() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("GetShiftByID", mock.Anything, shiftID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/shifts/"+shiftID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestGetExpectedCash_Success() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("CalculateExpectedCash", mock.Anything, shiftID).
		Return(decimal.NewFromInt(6150), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/shifts/%s/expected-cash", shiftID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ExpectedCashResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(shiftID, resp.ShiftID)
	suite.True(resp.ExpectedCash.Equal(decimal.NewFromInt(6150)))

	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestUpdateTotalSale_ClosedShiftConflicts() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("UpdateTotalSale", mock.Anything, shiftID, mock.Anything).
		Return(nil, apperrors.ErrShiftClosed).Once()

	payload, _ := json.Marshal(dto.UpdateTotalSaleRequest{TotalSale: decimal.NewFromInt(7000)})
	req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/shifts/%s/sale", shiftID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestCloseShift_Success() {
	shiftID := uuid.NewString()
	expectedCash := decimal.NewFromInt(4800)
	closingCash := decimal.NewFromInt(4600)
	closedAt := time.Now().UTC()
	closed := &domain.Shift{
		ShiftID:            shiftID,
		Date:               time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ShiftName:          domain.Evening,
		OpeningCash:        decimal.NewFromInt(1000),
		TotalSale:          decimal.NewFromInt(7000),
		ExpectedCash:       &expectedCash,
		ClosingCashEntered: &closingCash,
		Status:             domain.ShiftClosed,
		ClosedAt:           &closedAt,
	}

	suite.mockShiftService.On("CloseShift", mock.Anything, shiftID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(closingCash) }),
	).Return(closed, nil).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/shifts/%s/close", shiftID), dto.CloseShiftRequest{
		ClosingCash: closingCash,
	})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ShiftResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ShiftClosed, resp.Status)
	suite.NotNil(resp.ClosingCashEntered)
	suite.True(resp.ClosingCashEntered.Equal(closingCash))

	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestCloseShift_AlreadyClosedConflicts() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("CloseShift", mock.Anything, shiftID, mock.Anything).
		Return(nil, apperrors.ErrShiftClosed).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/shifts/%s/close", shiftID), dto.CloseShiftRequest{
		ClosingCash: decimal.NewFromInt(4800),
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestAddWithdrawal_Created() {
	shiftID := uuid.NewString()
	withdrawal := &domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		ShiftID:      shiftID,
		Amount:       decimal.NewFromInt(500),
		Description:  "school fees",
	}

	suite.mockShiftService.On("AddWithdrawal", mock.Anything, shiftID,
		mock.MatchedBy(func(req dto.CreateWithdrawalRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(500)) && req.Description == "school fees"
		}),
	).Return(withdrawal, nil).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/shifts/%s/withdrawals", shiftID), dto.CreateWithdrawalRequest{
		Amount:      decimal.NewFromInt(500),
		Description: "school fees",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.WithdrawalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(withdrawal.WithdrawalID, resp.WithdrawalID)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(500)))

	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestAddWithdrawal_ValidationErrorRejected() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("AddWithdrawal", mock.Anything, shiftID, mock.Anything).
		Return(nil, fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrValidation)).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/shifts/%s/withdrawals", shiftID), dto.CreateWithdrawalRequest{
		Amount:      decimal.NewFromInt(-500),
		Description: "typo",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockShiftService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestShiftHandler(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
