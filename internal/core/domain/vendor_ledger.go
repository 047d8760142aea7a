package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorLedgerRowKind tags the origin of a vendor ledger row.
type VendorLedgerRowKind string

const (
	LedgerOpening  VendorLedgerRowKind = "Opening Balance"
	LedgerPurchase VendorLedgerRowKind = "Purchase"
	LedgerPayment  VendorLedgerRowKind = "Payment"
	LedgerReturn   VendorLedgerRowKind = "Return"
)

// VendorLedgerRow is one line of a vendor statement with the running balance
// after the row. Balance is signed the creditor way: positive means the store
// owes the vendor.
type VendorLedgerRow struct {
	EntryDate   time.Time           `json:"entryDate"`
	Kind        VendorLedgerRowKind `json:"kind"`
	Note        string              `json:"note"` // "(cash)" for settled cash purchases
	Description string              `json:"description"`
	Debit       decimal.Decimal     `json:"debit"`
	Credit      decimal.Decimal     `json:"credit"`
	Balance     decimal.Decimal     `json:"balance"`
}

// VendorLedger is the full statement for one vendor over a date range.
type VendorLedger struct {
	VendorID       string            `json:"vendorID"`
	VendorName     string            `json:"vendorName"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	Rows           []VendorLedgerRow `json:"rows"`
	ClosingBalance decimal.Decimal   `json:"closingBalance"`
}
