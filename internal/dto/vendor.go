package dto

import (
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVendorRequest defines the data needed to create a vendor.
// OpeningBalance is signed: positive means the store owes the vendor.
type CreateVendorRequest struct {
	Name           string          `json:"name" binding:"required"`
	Contact        string          `json:"contact"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID       string          `json:"vendorID"`
	Name           string          `json:"name"`
	Contact        string          `json:"contact"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// CreatePurchaseRequest defines the data needed to record a purchase.
// SourceIfCash is required when paymentType is cash and ignored otherwise.
type CreatePurchaseRequest struct {
	VendorID     string                `json:"vendorID" binding:"required"`
	Amount       decimal.Decimal       `json:"amount" binding:"required"`
	PaymentType  domain.PaymentType    `json:"paymentType" binding:"required,oneof=cash credit"`
	SourceIfCash *domain.FundingSource `json:"sourceIfCash" binding:"omitempty,oneof=sales_cash owner_pocket"`
	Description  string                `json:"description"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID   string                `json:"purchaseID"`
	ShiftID      string                `json:"shiftID"`
	VendorID     string                `json:"vendorID"`
	VendorName   string                `json:"vendorName"`
	Amount       decimal.Decimal       `json:"amount"`
	PaymentType  domain.PaymentType    `json:"paymentType"`
	SourceIfCash *domain.FundingSource `json:"sourceIfCash"`
	Description  string                `json:"description"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// CreateVendorPaymentRequest defines the data needed to record a vendor payment.
type CreateVendorPaymentRequest struct {
	VendorID    string               `json:"vendorID" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Source      domain.FundingSource `json:"source" binding:"required,oneof=sales_cash owner_pocket"`
	Description string               `json:"description"`
}

// VendorPaymentResponse defines the data returned for a vendor payment.
type VendorPaymentResponse struct {
	PaymentID   string               `json:"paymentID"`
	ShiftID     string               `json:"shiftID"`
	VendorID    string               `json:"vendorID"`
	VendorName  string               `json:"vendorName"`
	Amount      decimal.Decimal      `json:"amount"`
	Source      domain.FundingSource `json:"source"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// CreateReturnRequest defines the data needed to record a return to a vendor.
type CreateReturnRequest struct {
	VendorID    string          `json:"vendorID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ReturnResponse defines the data returned for a return.
type ReturnResponse struct {
	ReturnID    string          `json:"returnID"`
	ShiftID     string          `json:"shiftID"`
	VendorID    string          `json:"vendorID"`
	VendorName  string          `json:"vendorName"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:       v.VendorID,
		Name:           v.Name,
		Contact:        v.Contact,
		OpeningBalance: v.OpeningBalance,
		CreatedAt:      v.CreatedAt,
	}
}

// ToListVendorResponse converts a slice of domain.Vendor to DTOs
func ToListVendorResponse(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i := range vendors {
		res[i] = ToVendorResponse(&vendors[i])
	}
	return res
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		ShiftID:      p.ShiftID,
		VendorID:     p.VendorID,
		VendorName:   p.VendorName,
		Amount:       p.Amount,
		PaymentType:  p.PaymentType,
		SourceIfCash: p.SourceIfCash,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}

// ToVendorPaymentResponse converts a domain.VendorPayment to VendorPaymentResponse DTO
func ToVendorPaymentResponse(p *domain.VendorPayment) VendorPaymentResponse {
	return VendorPaymentResponse{
		PaymentID:   p.PaymentID,
		ShiftID:     p.ShiftID,
		VendorID:    p.VendorID,
		VendorName:  p.VendorName,
		Amount:      p.Amount,
		Source:      p.Source,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListVendorPaymentResponse converts a slice of domain.VendorPayment to DTOs
func ToListVendorPaymentResponse(payments []domain.VendorPayment) []VendorPaymentResponse {
	res := make([]VendorPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToVendorPaymentResponse(&payments[i])
	}
	return res
}

// ToReturnResponse converts a domain.Return to ReturnResponse DTO
func ToReturnResponse(r *domain.Return) ReturnResponse {
	return ReturnResponse{
		ReturnID:    r.ReturnID,
		ShiftID:     r.ShiftID,
		VendorID:    r.VendorID,
		VendorName:  r.VendorName,
		Amount:      r.Amount,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// ToListReturnResponse converts a slice of domain.Return to DTOs
func ToListReturnResponse(returns []domain.Return) []ReturnResponse {
	res := make([]ReturnResponse, len(returns))
	for i := range returns {
		res[i] = ToReturnResponse(&returns[i])
	}
	return res
}
