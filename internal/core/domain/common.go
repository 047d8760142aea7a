package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The app is single-operator, so there is no created-by/updated-by user.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// FundingSource identifies which pool of money an outflow was taken from:
// the sales till itself, or the owner's personal funds.
type FundingSource string

const (
	SalesCash   FundingSource = "sales_cash"
	OwnerPocket FundingSource = "owner_pocket"
)

// IsValid reports whether the funding source is one of the two known pools.
func (s FundingSource) IsValid() bool {
	return s == SalesCash || s == OwnerPocket
}
