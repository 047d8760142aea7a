package pgsql

import (
	"context"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	"github.com/shiftbook/shift_cash_app/internal/models"
	"github.com/shiftbook/shift_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOwnerLedgerRepository struct {
	BaseRepository
}

// newPgxOwnerLedgerRepository creates a new repository for the owner ledger.
func newPgxOwnerLedgerRepository(pool *pgxpool.Pool) portsrepo.OwnerLedgerRepositoryFacade {
	return &PgxOwnerLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OwnerLedgerRepositoryFacade = (*PgxOwnerLedgerRepository)(nil)

const ownerLedgerColumns = `entry_id, amount, description, shift_id, transaction_date, created_at, last_updated_at`

// SaveOwnerLedgerEntry appends a new entry. The ledger has no update or delete.
func (r *PgxOwnerLedgerRepository) SaveOwnerLedgerEntry(ctx context.Context, entry domain.OwnerLedgerEntry) error {
	m := mapping.ToModelOwnerLedgerEntry(entry)

	query := `
		INSERT INTO owner_ledger (` + ownerLedgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Amount,
		m.Description,
		m.ShiftID,
		m.TransactionDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save owner ledger entry "+m.EntryID, err)
	}
	return nil
}

// ListOwnerLedgerEntries retrieves every entry ordered by transaction date
// ascending, with insertion order breaking ties.
func (r *PgxOwnerLedgerRepository) ListOwnerLedgerEntries(ctx context.Context) ([]domain.OwnerLedgerEntry, error) {
	query := `SELECT ` + ownerLedgerColumns + ` FROM owner_ledger ORDER BY transaction_date, created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query owner ledger", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OwnerLedgerEntry, error) {
		var e models.OwnerLedgerEntry
		err := row.Scan(
			&e.EntryID,
			&e.Amount,
			&e.Description,
			&e.ShiftID,
			&e.TransactionDate,
			&e.CreatedAt,
			&e.LastUpdatedAt,
		)
		return e, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan owner ledger entries", err)
	}
	return mapping.ToDomainOwnerLedgerEntrySlice(modelEntries), nil
}
