package dto

import (
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VendorLedgerRowResponse defines one line of a vendor statement.
type VendorLedgerRowResponse struct {
	EntryDate   time.Time       `json:"entryDate"`
	Kind        string          `json:"kind"`
	Note        string          `json:"note,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// VendorLedgerResponse defines the full vendor statement over a date range.
type VendorLedgerResponse struct {
	VendorID       string                    `json:"vendorID"`
	VendorName     string                    `json:"vendorName"`
	StartDate      string                    `json:"startDate"`
	EndDate        string                    `json:"endDate"`
	Rows           []VendorLedgerRowResponse `json:"rows"`
	ClosingBalance decimal.Decimal           `json:"closingBalance"`
}

// ToVendorLedgerResponse converts a domain.VendorLedger to VendorLedgerResponse DTO
func ToVendorLedgerResponse(l *domain.VendorLedger) VendorLedgerResponse {
	rows := make([]VendorLedgerRowResponse, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = VendorLedgerRowResponse{
			EntryDate:   row.EntryDate,
			Kind:        string(row.Kind),
			Note:        row.Note,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}
	return VendorLedgerResponse{
		VendorID:       l.VendorID,
		VendorName:     l.VendorName,
		StartDate:      l.StartDate.Format(DateOnly),
		EndDate:        l.EndDate.Format(DateOnly),
		Rows:           rows,
		ClosingBalance: l.ClosingBalance,
	}
}
