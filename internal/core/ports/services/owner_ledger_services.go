package services

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OwnerLedgerSvcFacade defines the append-only owner ledger recorder.
type OwnerLedgerSvcFacade interface {
	// RecordEntry appends a signed entry: positive when the owner puts cash
	// into the business, negative when the owner takes cash out.
	RecordEntry(ctx context.Context, amount decimal.Decimal, description string, shiftID *string, at time.Time) (*domain.OwnerLedgerEntry, error)

	// ListEntries retrieves every entry in transaction-date order with the
	// running balance recomputed per call.
	ListEntries(ctx context.Context) ([]domain.OwnerLedgerLine, error)
}
