package repositories

import (
	"context"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
)

// OwnerLedgerReader defines read operations for the owner ledger
type OwnerLedgerReader interface {
	// ListOwnerLedgerEntries retrieves every entry ordered by transaction date
	// ascending. The running balance is a prefix sum over this ordering.
	ListOwnerLedgerEntries(ctx context.Context) ([]domain.OwnerLedgerEntry, error)
}

// OwnerLedgerWriter defines write operations for the owner ledger
type OwnerLedgerWriter interface {
	// SaveOwnerLedgerEntry appends a new entry. The ledger is append-only;
	// there is no update or delete.
	SaveOwnerLedgerEntry(ctx context.Context, entry domain.OwnerLedgerEntry) error
}

// OwnerLedgerRepositoryFacade combines the owner ledger repository interfaces
type OwnerLedgerRepositoryFacade interface {
	OwnerLedgerReader
	OwnerLedgerWriter
}
