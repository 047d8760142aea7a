package domain

import "github.com/shopspring/decimal"

// Vendor is a supplier the store buys from. OpeningBalance is signed:
// positive means the store owes the vendor.
type Vendor struct {
	VendorID       string          `json:"vendorID"`
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// PaymentType indicates how a purchase was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// IsValid reports whether the payment type is one of the known kinds.
func (t PaymentType) IsValid() bool {
	return t == PaymentCash || t == PaymentCredit
}

// Purchase is goods bought from a vendor during a shift. SourceIfCash is
// required for cash purchases and absent for credit purchases.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"`
	ShiftID      string          `json:"shiftID"`
	VendorID     string          `json:"vendorID"`
	VendorName   string          `json:"vendorName"` // enriched from vendors, not stored
	Amount       decimal.Decimal `json:"amount"`
	PaymentType  PaymentType     `json:"paymentType"`
	SourceIfCash *FundingSource  `json:"sourceIfCash"`
	Description  string          `json:"description"`
	AuditFields
}

// ReducesTill reports whether the purchase was settled immediately out of
// the sales till, and therefore lowers the shift's expected cash.
func (p Purchase) ReducesTill() bool {
	return p.PaymentType == PaymentCash && p.SourceIfCash != nil && *p.SourceIfCash == SalesCash
}

// VendorPayment is the store paying down vendor debt during a shift.
type VendorPayment struct {
	PaymentID   string          `json:"paymentID"`
	ShiftID     string          `json:"shiftID"`
	VendorID    string          `json:"vendorID"`
	VendorName  string          `json:"vendorName"` // enriched from vendors, not stored
	Amount      decimal.Decimal `json:"amount"`
	Source      FundingSource   `json:"source"`
	Description string          `json:"description"`
	AuditFields
}

// Return is goods handed back to a vendor, reducing what the store owes.
// Returns never move cash.
type Return struct {
	ReturnID    string          `json:"returnID"`
	ShiftID     string          `json:"shiftID"`
	VendorID    string          `json:"vendorID"`
	VendorName  string          `json:"vendorName"` // enriched from vendors, not stored
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
