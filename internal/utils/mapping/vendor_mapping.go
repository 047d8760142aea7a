package mapping

import (
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:       d.VendorID,
		Name:           d.Name,
		Contact:        d.Contact,
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:       m.VendorID,
		Name:           m.Name,
		Contact:        m.Contact,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of model Vendors to domain Vendors
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}

// ToModelPurchase converts a domain Purchase to a model Purchase.
// VendorName is an enrichment field and is not persisted.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	var source *string
	if d.SourceIfCash != nil {
		s := string(*d.SourceIfCash)
		source = &s
	}
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		ShiftID:      d.ShiftID,
		VendorID:     d.VendorID,
		Amount:       d.Amount,
		PaymentType:  string(d.PaymentType),
		SourceIfCash: source,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	var source *domain.FundingSource
	if m.SourceIfCash != nil {
		s := domain.FundingSource(*m.SourceIfCash)
		source = &s
	}
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		ShiftID:      m.ShiftID,
		VendorID:     m.VendorID,
		Amount:       m.Amount,
		PaymentType:  domain.PaymentType(m.PaymentType),
		SourceIfCash: source,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseSlice converts a slice of model Purchases to domain Purchases
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}

// ToModelVendorPayment converts a domain VendorPayment to a model VendorPayment
func ToModelVendorPayment(d domain.VendorPayment) models.VendorPayment {
	return models.VendorPayment{
		PaymentID:   d.PaymentID,
		ShiftID:     d.ShiftID,
		VendorID:    d.VendorID,
		Amount:      d.Amount,
		Source:      string(d.Source),
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendorPayment converts a model VendorPayment to a domain VendorPayment
func ToDomainVendorPayment(m models.VendorPayment) domain.VendorPayment {
	return domain.VendorPayment{
		PaymentID:   m.PaymentID,
		ShiftID:     m.ShiftID,
		VendorID:    m.VendorID,
		Amount:      m.Amount,
		Source:      domain.FundingSource(m.Source),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorPaymentSlice converts a slice of model VendorPayments to domain VendorPayments
func ToDomainVendorPaymentSlice(ms []models.VendorPayment) []domain.VendorPayment {
	ds := make([]domain.VendorPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendorPayment(m)
	}
	return ds
}

// ToModelReturn converts a domain Return to a model Return
func ToModelReturn(d domain.Return) models.Return {
	return models.Return{
		ReturnID:    d.ReturnID,
		ShiftID:     d.ShiftID,
		VendorID:    d.VendorID,
		Amount:      d.Amount,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReturn converts a model Return to a domain Return
func ToDomainReturn(m models.Return) domain.Return {
	return domain.Return{
		ReturnID:    m.ReturnID,
		ShiftID:     m.ShiftID,
		VendorID:    m.VendorID,
		Amount:      m.Amount,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReturnSlice converts a slice of model Returns to domain Returns
func ToDomainReturnSlice(ms []models.Return) []domain.Return {
	ds := make([]domain.Return, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReturn(m)
	}
	return ds
}
