package dto

import (
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseHeadRequest defines the data needed to create an expense head.
type CreateExpenseHeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ExpenseHeadResponse defines the data returned for an expense head.
type ExpenseHeadResponse struct {
	HeadID      string    `json:"headID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	HeadID      string               `json:"headID" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Source      domain.FundingSource `json:"source" binding:"required,oneof=sales_cash owner_pocket"`
	Description string               `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string               `json:"expenseID"`
	ShiftID     string               `json:"shiftID"`
	HeadID      string               `json:"headID"`
	HeadName    string               `json:"headName"`
	Amount      decimal.Decimal      `json:"amount"`
	Source      domain.FundingSource `json:"source"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ToExpenseHeadResponse converts a domain.ExpenseHead to ExpenseHeadResponse DTO
func ToExpenseHeadResponse(h *domain.ExpenseHead) ExpenseHeadResponse {
	return ExpenseHeadResponse{
		HeadID:      h.HeadID,
		Name:        h.Name,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}
}

// ToListExpenseHeadResponse converts a slice of domain.ExpenseHead to DTOs
func ToListExpenseHeadResponse(heads []domain.ExpenseHead) []ExpenseHeadResponse {
	res := make([]ExpenseHeadResponse, len(heads))
	for i := range heads {
		res[i] = ToExpenseHeadResponse(&heads[i])
	}
	return res
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ShiftID:     e.ShiftID,
		HeadID:      e.HeadID,
		HeadName:    e.HeadName,
		Amount:      e.Amount,
		Source:      e.Source,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
