package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	"github.com/shiftbook/shift_cash_app/internal/models"
	"github.com/shiftbook/shift_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift and withdrawal data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, date, shift_name, opening_cash, total_sale, expected_cash, closing_cash_entered, status, closed_at, created_at, last_updated_at`

func scanShift(row pgx.Row) (models.Shift, error) {
	var s models.Shift
	err := row.Scan(
		&s.ShiftID,
		&s.Date,
		&s.ShiftName,
		&s.OpeningCash,
		&s.TotalSale,
		&s.ExpectedCash,
		&s.ClosingCashEntered,
		&s.Status,
		&s.ClosedAt,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	return s, err
}

// SaveShift inserts a new shift row. The unique (date, shift_name) constraint
// turns create races into ErrDuplicate.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.Date,
		m.ShiftName,
		m.OpeningCash,
		m.TotalSale,
		m.ExpectedCash,
		m.ClosingCashEntered,
		m.Status,
		m.ClosedAt,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: shift for %s %s already exists", apperrors.ErrDuplicate, m.Date.Format("2006-01-02"), m.ShiftName)
		}
		return apperrors.NewAppError(500, "failed to save shift "+m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by ID, or nil when it does not exist.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`

	m, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find shift "+shiftID, err)
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

// FindShiftByDateAndName retrieves the shift for an exact (date, name) pair,
// or nil when it does not exist.
func (r *PgxShiftRepository) FindShiftByDateAndName(ctx context.Context, date time.Time, name domain.ShiftName) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date = $1 AND shift_name = $2;`

	m, err := scanShift(r.Pool.QueryRow(ctx, query, date, string(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find shift for "+date.Format("2006-01-02")+" "+string(name), err)
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

// FindShiftsByDateAndNames retrieves the shifts on a date whose names match.
func (r *PgxShiftRepository) FindShiftsByDateAndNames(ctx context.Context, date time.Time, names []domain.ShiftName) ([]domain.Shift, error) {
	if len(names) == 0 {
		return []domain.Shift{}, nil
	}
	nameStrs := make([]string, len(names))
	for i, n := range names {
		nameStrs[i] = string(n)
	}
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date = $1 AND shift_name = ANY($2);`

	return r.queryShifts(ctx, query, date, nameStrs)
}

// ListShiftsByDate retrieves every shift recorded on a date.
func (r *PgxShiftRepository) ListShiftsByDate(ctx context.Context, date time.Time) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date = $1;`
	return r.queryShifts(ctx, query, date)
}

// ListShiftsInRange retrieves shifts whose date falls within [start, end].
func (r *PgxShiftRepository) ListShiftsInRange(ctx context.Context, start, end time.Time) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date >= $1 AND date <= $2 ORDER BY date;`
	return r.queryShifts(ctx, query, start, end)
}

func (r *PgxShiftRepository) queryShifts(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts", err)
	}
	defer rows.Close()

	modelShifts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Shift, error) {
		return scanShift(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan shifts", err)
	}
	return mapping.ToDomainShiftSlice(modelShifts), nil
}

// UpdateTotalSale persists a new total sale figure for a shift.
func (r *PgxShiftRepository) UpdateTotalSale(ctx context.Context, shiftID string, totalSale decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE shifts SET total_sale = $1, last_updated_at = $2 WHERE shift_id = $3;`

	tag, err := r.Pool.Exec(ctx, query, totalSale, updatedAt, shiftID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update total sale for shift "+shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateExpectedCash persists the recomputed expected cash onto the shift row.
func (r *PgxShiftRepository) UpdateExpectedCash(ctx context.Context, shiftID string, expectedCash decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE shifts SET expected_cash = $1, last_updated_at = $2 WHERE shift_id = $3;`

	tag, err := r.Pool.Exec(ctx, query, expectedCash, updatedAt, shiftID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expected cash for shift "+shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, apperrors.ErrNotFound)
	}
	return nil
}

// MarkShiftClosed persists the counted closing cash and the closed status.
func (r *PgxShiftRepository) MarkShiftClosed(ctx context.Context, shiftID string, closingCash decimal.Decimal, closedAt time.Time) error {
	query := `
		UPDATE shifts
		SET closing_cash_entered = $1, status = $2, closed_at = $3, last_updated_at = $3
		WHERE shift_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, closingCash, string(domain.ShiftClosed), closedAt, shiftID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close shift "+shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, apperrors.ErrNotFound)
	}
	return nil
}

const withdrawalColumns = `withdrawal_id, shift_id, amount, description, created_at, last_updated_at`

// SaveWithdrawal inserts a new withdrawal row.
func (r *PgxShiftRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	m := mapping.ToModelWithdrawal(withdrawal)

	query := `
		INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WithdrawalID,
		m.ShiftID,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save withdrawal "+m.WithdrawalID, err)
	}
	return nil
}

// ListWithdrawalsByShift retrieves every withdrawal recorded against a shift.
func (r *PgxShiftRepository) ListWithdrawalsByShift(ctx context.Context, shiftID string) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE shift_id = $1 ORDER BY created_at;`
	return r.queryWithdrawals(ctx, query, shiftID)
}

// ListWithdrawalsByShiftIDs retrieves withdrawals across multiple shifts.
func (r *PgxShiftRepository) ListWithdrawalsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.Withdrawal, error) {
	if len(shiftIDs) == 0 {
		return []domain.Withdrawal{}, nil
	}
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE shift_id = ANY($1) ORDER BY created_at;`
	return r.queryWithdrawals(ctx, query, shiftIDs)
}

func (r *PgxShiftRepository) queryWithdrawals(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query withdrawals", err)
	}
	defer rows.Close()

	modelWithdrawals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Withdrawal, error) {
		var w models.Withdrawal
		err := row.Scan(
			&w.WithdrawalID,
			&w.ShiftID,
			&w.Amount,
			&w.Description,
			&w.CreatedAt,
			&w.LastUpdatedAt,
		)
		return w, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan withdrawals", err)
	}
	return mapping.ToDomainWithdrawalSlice(modelWithdrawals), nil
}
