package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	"github.com/shiftbook/shift_cash_app/internal/models"
	"github.com/shiftbook/shift_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense head and expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseHeadColumns = `head_id, name, description, created_at, last_updated_at`

func scanExpenseHead(row pgx.Row) (models.ExpenseHead, error) {
	var h models.ExpenseHead
	err := row.Scan(
		&h.HeadID,
		&h.Name,
		&h.Description,
		&h.CreatedAt,
		&h.LastUpdatedAt,
	)
	return h, err
}

// SaveExpenseHead inserts a new expense head. Head names are unique.
func (r *PgxExpenseRepository) SaveExpenseHead(ctx context.Context, head domain.ExpenseHead) error {
	m := mapping.ToModelExpenseHead(head)

	query := `
		INSERT INTO expense_heads (` + expenseHeadColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HeadID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: expense head %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save expense head "+m.HeadID, err)
	}
	return nil
}

// FindExpenseHeadByID retrieves a head by ID, or nil when it does not exist.
func (r *PgxExpenseRepository) FindExpenseHeadByID(ctx context.Context, headID string) (*domain.ExpenseHead, error) {
	query := `SELECT ` + expenseHeadColumns + ` FROM expense_heads WHERE head_id = $1;`

	m, err := scanExpenseHead(r.Pool.QueryRow(ctx, query, headID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find expense head "+headID, err)
	}
	d := mapping.ToDomainExpenseHead(m)
	return &d, nil
}

// FindExpenseHeadByName retrieves a head by its exact name, or nil when it
// does not exist.
func (r *PgxExpenseRepository) FindExpenseHeadByName(ctx context.Context, name string) (*domain.ExpenseHead, error) {
	query := `SELECT ` + expenseHeadColumns + ` FROM expense_heads WHERE name = $1;`

	m, err := scanExpenseHead(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find expense head "+name, err)
	}
	d := mapping.ToDomainExpenseHead(m)
	return &d, nil
}

// ListExpenseHeads retrieves every expense head ordered by name.
func (r *PgxExpenseRepository) ListExpenseHeads(ctx context.Context) ([]domain.ExpenseHead, error) {
	query := `SELECT ` + expenseHeadColumns + ` FROM expense_heads ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense heads", err)
	}
	defer rows.Close()

	modelHeads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseHead, error) {
		return scanExpenseHead(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan expense heads", err)
	}
	return mapping.ToDomainExpenseHeadSlice(modelHeads), nil
}

const expenseColumns = `expense_id, shift_id, head_id, amount, source, description, created_at, last_updated_at`

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.ShiftID,
		m.HeadID,
		m.Amount,
		m.Source,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save expense "+m.ExpenseID, err)
	}
	return nil
}

// ListExpensesByShift retrieves every expense recorded against a shift.
func (r *PgxExpenseRepository) ListExpensesByShift(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE shift_id = $1 ORDER BY created_at;`
	return r.queryExpenses(ctx, query, shiftID)
}

// ListExpensesByShiftIDs retrieves expenses across multiple shifts.
func (r *PgxExpenseRepository) ListExpensesByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Expense, error) {
	if len(shiftIDs) == 0 {
		return []domain.Expense{}, nil
	}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE shift_id = ANY($1) ORDER BY created_at;`
	return r.queryExpenses(ctx, query, shiftIDs)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var e models.Expense
		err := row.Scan(
			&e.ExpenseID,
			&e.ShiftID,
			&e.HeadID,
			&e.Amount,
			&e.Source,
			&e.Description,
			&e.CreatedAt,
			&e.LastUpdatedAt,
		)
		return e, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan expenses", err)
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}
