package pgsql

import (
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:       newPgxShiftRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		VendorRepo:      newPgxVendorRepository(dbPool),
		OwnerLedgerRepo: newPgxOwnerLedgerRepository(dbPool),
	}
}
