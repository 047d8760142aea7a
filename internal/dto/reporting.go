package dto

import (
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailySummaryResponse aggregates one date across its shifts.
type DailySummaryResponse struct {
	Date                string          `json:"date"`
	TotalSale           decimal.Decimal `json:"totalSale"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	TotalWithdrawals    decimal.Decimal `json:"totalWithdrawals"`
	TotalVendorPayments decimal.Decimal `json:"totalVendorPayments"`
	AvailableCash       decimal.Decimal `json:"availableCash"`
	Shifts              []ShiftResponse `json:"shifts"`
}

// ExpenseHeadTotalResponse is the summed expense amount for one head.
type ExpenseHeadTotalResponse struct {
	HeadName string          `json:"headName"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseReportRowResponse is one expense with shift and head context.
type ExpenseReportRowResponse struct {
	Date        string               `json:"date"`
	ShiftName   domain.ShiftName     `json:"shiftName"`
	HeadName    string               `json:"headName"`
	Amount      decimal.Decimal      `json:"amount"`
	Source      domain.FundingSource `json:"source"`
	Description string               `json:"description"`
}

// SalesSummaryRowResponse is the total recorded sale for one date.
type SalesSummaryRowResponse struct {
	Date      string          `json:"date"`
	TotalSale decimal.Decimal `json:"totalSale"`
}

// WithdrawalReportRowResponse is one withdrawal with shift context.
type WithdrawalReportRowResponse struct {
	Date        string           `json:"date"`
	ShiftName   domain.ShiftName `json:"shiftName"`
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
}

// PaymentReportRowResponse is one vendor payment with shift and vendor context.
type PaymentReportRowResponse struct {
	Date        string               `json:"date"`
	ShiftName   domain.ShiftName     `json:"shiftName"`
	VendorName  string               `json:"vendorName"`
	Amount      decimal.Decimal      `json:"amount"`
	Source      domain.FundingSource `json:"source"`
	Description string               `json:"description"`
}

// ToDailySummaryResponse converts a domain.DailySummary to DailySummaryResponse DTO
func ToDailySummaryResponse(s *domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:                s.Date.Format(DateOnly),
		TotalSale:           s.TotalSale,
		TotalExpenses:       s.TotalExpenses,
		TotalWithdrawals:    s.TotalWithdrawals,
		TotalVendorPayments: s.TotalVendorPayments,
		AvailableCash:       s.AvailableCash,
		Shifts:              ToListShiftResponse(s.Shifts),
	}
}

// ToListExpenseHeadTotalResponse converts domain expense head totals to DTOs
func ToListExpenseHeadTotalResponse(totals []domain.ExpenseHeadTotal) []ExpenseHeadTotalResponse {
	res := make([]ExpenseHeadTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = ExpenseHeadTotalResponse{HeadName: t.HeadName, Total: t.Total}
	}
	return res
}

// ToListExpenseReportRowResponse converts domain expense report rows to DTOs
func ToListExpenseReportRowResponse(rows []domain.ExpenseReportRow) []ExpenseReportRowResponse {
	res := make([]ExpenseReportRowResponse, len(rows))
	for i, r := range rows {
		res[i] = ExpenseReportRowResponse{
			Date:        r.Date.Format(DateOnly),
			ShiftName:   r.ShiftName,
			HeadName:    r.HeadName,
			Amount:      r.Amount,
			Source:      r.Source,
			Description: r.Description,
		}
	}
	return res
}

// ToListSalesSummaryRowResponse converts domain sales summary rows to DTOs
func ToListSalesSummaryRowResponse(rows []domain.SalesSummaryRow) []SalesSummaryRowResponse {
	res := make([]SalesSummaryRowResponse, len(rows))
	for i, r := range rows {
		res[i] = SalesSummaryRowResponse{Date: r.Date.Format(DateOnly), TotalSale: r.TotalSale}
	}
	return res
}

// ToListWithdrawalReportRowResponse converts domain withdrawal report rows to DTOs
func ToListWithdrawalReportRowResponse(rows []domain.WithdrawalReportRow) []WithdrawalReportRowResponse {
	res := make([]WithdrawalReportRowResponse, len(rows))
	for i, r := range rows {
		res[i] = WithdrawalReportRowResponse{
			Date:        r.Date.Format(DateOnly),
			ShiftName:   r.ShiftName,
			Amount:      r.Amount,
			Description: r.Description,
		}
	}
	return res
}

// ToListPaymentReportRowResponse converts domain payment report rows to DTOs
func ToListPaymentReportRowResponse(rows []domain.PaymentReportRow) []PaymentReportRowResponse {
	res := make([]PaymentReportRowResponse, len(rows))
	for i, r := range rows {
		res[i] = PaymentReportRowResponse{
			Date:        r.Date.Format(DateOnly),
			ShiftName:   r.ShiftName,
			VendorName:  r.VendorName,
			Amount:      r.Amount,
			Source:      r.Source,
			Description: r.Description,
		}
	}
	return res
}
