package models

import "github.com/shopspring/decimal"

// Vendor is the DB row for a supplier.
type Vendor struct {
	VendorID       string          `json:"vendorID"`
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// Purchase is the DB row for goods bought during a shift.
// source_if_cash is NULL for credit purchases.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"`
	ShiftID      string          `json:"shiftID"`  // FK -> shifts
	VendorID     string          `json:"vendorID"` // FK -> vendors
	Amount       decimal.Decimal `json:"amount"`
	PaymentType  string          `json:"paymentType"` // cash|credit
	SourceIfCash *string         `json:"sourceIfCash"`
	Description  string          `json:"description"`
	AuditFields
}

// VendorPayment is the DB row for the store paying down vendor debt.
type VendorPayment struct {
	PaymentID   string          `json:"paymentID"`
	ShiftID     string          `json:"shiftID"`
	VendorID    string          `json:"vendorID"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"` // sales_cash|owner_pocket
	Description string          `json:"description"`
	AuditFields
}

// Return is the DB row for goods returned to a vendor.
type Return struct {
	ReturnID    string          `json:"returnID"`
	ShiftID     string          `json:"shiftID"`
	VendorID    string          `json:"vendorID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
