package dto

import (
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetOrCreateShiftRequest selects the shift to record against. The shift is
// created lazily when the (date, shiftName) pair has never been used.
type GetOrCreateShiftRequest struct {
	Date      string           `json:"date" binding:"required,datetime=2006-01-02"`
	ShiftName domain.ShiftName `json:"shiftName" binding:"required,oneof=Morning Evening Night"`
}

// UpdateTotalSaleRequest replaces the shift's recorded total sale.
type UpdateTotalSaleRequest struct {
	TotalSale decimal.Decimal `json:"totalSale" binding:"required"`
}

// CloseShiftRequest carries the physically counted closing cash.
type CloseShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closingCash" binding:"required"`
}

// CreateWithdrawalRequest records the owner taking cash from the till.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID            string             `json:"shiftID"`
	Date               string             `json:"date"`
	ShiftName          domain.ShiftName   `json:"shiftName"`
	OpeningCash        decimal.Decimal    `json:"openingCash"`
	TotalSale          decimal.Decimal    `json:"totalSale"`
	ExpectedCash       *decimal.Decimal   `json:"expectedCash"`
	ClosingCashEntered *decimal.Decimal   `json:"closingCashEntered"`
	Status             domain.ShiftStatus `json:"status"`
	ClosedAt           *time.Time         `json:"closedAt"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ExpectedCashResponse exposes the reconciliation calculator's output.
type ExpectedCashResponse struct {
	ShiftID      string          `json:"shiftID"`
	ExpectedCash decimal.Decimal `json:"expectedCash"`
}

// WithdrawalResponse defines the data returned for a withdrawal.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	ShiftID      string          `json:"shiftID"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// DateOnly is the wire format for calendar dates.
const DateOnly = "2006-01-02"

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:            s.ShiftID,
		Date:               s.Date.Format(DateOnly),
		ShiftName:          s.ShiftName,
		OpeningCash:        s.OpeningCash,
		TotalSale:          s.TotalSale,
		ExpectedCash:       s.ExpectedCash,
		ClosingCashEntered: s.ClosingCashEntered,
		Status:             s.Status,
		ClosedAt:           s.ClosedAt,
		CreatedAt:          s.CreatedAt,
	}
}

// ToListShiftResponse converts a slice of domain.Shift to ShiftResponse DTOs
func ToListShiftResponse(shifts []domain.Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		res[i] = ToShiftResponse(&shifts[i])
	}
	return res
}

// ToWithdrawalResponse converts a domain.Withdrawal to WithdrawalResponse DTO
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		ShiftID:      w.ShiftID,
		Amount:       w.Amount,
		Description:  w.Description,
		CreatedAt:    w.CreatedAt,
	}
}

// ToListWithdrawalResponse converts a slice of domain.Withdrawal to DTOs
func ToListWithdrawalResponse(ws []domain.Withdrawal) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(ws))
	for i := range ws {
		res[i] = ToWithdrawalResponse(&ws[i])
	}
	return res
}
