package dto

import (
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOwnerLedgerEntryRequest records a manual owner ledger entry.
// Amount is signed: positive = owner put cash in, negative = owner took cash out.
type CreateOwnerLedgerEntryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	ShiftID     *string         `json:"shiftID"`
}

// OwnerLedgerEntryResponse defines a single recorded entry, before any
// running balance is computed.
type OwnerLedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ShiftID         *string         `json:"shiftID"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// ToOwnerLedgerEntryResponse converts a domain.OwnerLedgerEntry to its DTO.
func ToOwnerLedgerEntryResponse(e *domain.OwnerLedgerEntry) OwnerLedgerEntryResponse {
	return OwnerLedgerEntryResponse{
		EntryID:         e.EntryID,
		Amount:          e.Amount,
		Description:     e.Description,
		ShiftID:         e.ShiftID,
		TransactionDate: e.TransactionDate,
	}
}

// OwnerLedgerLineResponse defines one owner ledger entry with its running balance.
type OwnerLedgerLineResponse struct {
	EntryID         string          `json:"entryID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ShiftID         *string         `json:"shiftID"`
	TransactionDate time.Time       `json:"transactionDate"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// OwnerLedgerResponse defines the full owner ledger with its closing balance.
type OwnerLedgerResponse struct {
	Entries []OwnerLedgerLineResponse `json:"entries"`
	Balance decimal.Decimal           `json:"balance"`
}

// ToOwnerLedgerResponse converts owner ledger lines to the response DTO.
func ToOwnerLedgerResponse(lines []domain.OwnerLedgerLine) OwnerLedgerResponse {
	res := OwnerLedgerResponse{
		Entries: make([]OwnerLedgerLineResponse, len(lines)),
		Balance: decimal.Zero,
	}
	for i, line := range lines {
		res.Entries[i] = OwnerLedgerLineResponse{
			EntryID:         line.EntryID,
			Amount:          line.Amount,
			Description:     line.Description,
			ShiftID:         line.ShiftID,
			TransactionDate: line.TransactionDate,
			RunningBalance:  line.RunningBalance,
		}
	}
	if len(lines) > 0 {
		res.Balance = lines[len(lines)-1].RunningBalance
	}
	return res
}
