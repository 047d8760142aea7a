package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	"github.com/shiftbook/shift_cash_app/internal/models"
	"github.com/shiftbook/shift_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor, purchase,
// payment and return data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, contact, opening_balance, created_at, last_updated_at`

// SaveVendor inserts a new vendor row.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)

	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		m.Contact,
		m.OpeningBalance,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save vendor "+m.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by ID, or nil when it does not exist.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`

	var m models.Vendor
	err := r.Pool.QueryRow(ctx, query, vendorID).Scan(
		&m.VendorID,
		&m.Name,
		&m.Contact,
		&m.OpeningBalance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find vendor "+vendorID, err)
	}
	d := mapping.ToDomainVendor(m)
	return &d, nil
}

// ListVendors retrieves every vendor ordered by name.
func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vendors", err)
	}
	defer rows.Close()

	modelVendors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Vendor, error) {
		var v models.Vendor
		err := row.Scan(
			&v.VendorID,
			&v.Name,
			&v.Contact,
			&v.OpeningBalance,
			&v.CreatedAt,
			&v.LastUpdatedAt,
		)
		return v, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan vendors", err)
	}
	return mapping.ToDomainVendorSlice(modelVendors), nil
}

const purchaseColumns = `purchase_id, shift_id, vendor_id, amount, payment_type, source_if_cash, description, created_at, last_updated_at`

// SavePurchase inserts a new purchase row.
func (r *PgxVendorRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.ShiftID,
		m.VendorID,
		m.Amount,
		m.PaymentType,
		m.SourceIfCash,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save purchase "+m.PurchaseID, err)
	}
	return nil
}

// ListPurchasesByShift retrieves every purchase recorded against a shift.
func (r *PgxVendorRepository) ListPurchasesByShift(ctx context.Context, shiftID string) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE shift_id = $1 ORDER BY created_at;`
	return r.queryPurchases(ctx, query, shiftID)
}

// ListPurchasesByVendorInRange retrieves a vendor's purchases created within [start, end].
func (r *PgxVendorRepository) ListPurchasesByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE vendor_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at;
	`
	return r.queryPurchases(ctx, query, vendorID, start, end)
}

func (r *PgxVendorRepository) queryPurchases(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchases", err)
	}
	defer rows.Close()

	modelPurchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Purchase, error) {
		var p models.Purchase
		err := row.Scan(
			&p.PurchaseID,
			&p.ShiftID,
			&p.VendorID,
			&p.Amount,
			&p.PaymentType,
			&p.SourceIfCash,
			&p.Description,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		return p, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan purchases", err)
	}
	return mapping.ToDomainPurchaseSlice(modelPurchases), nil
}

const vendorPaymentColumns = `payment_id, shift_id, vendor_id, amount, source, description, created_at, last_updated_at`

// SaveVendorPayment inserts a new vendor payment row.
func (r *PgxVendorRepository) SaveVendorPayment(ctx context.Context, payment domain.VendorPayment) error {
	m := mapping.ToModelVendorPayment(payment)

	query := `
		INSERT INTO vendor_payments (` + vendorPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.ShiftID,
		m.VendorID,
		m.Amount,
		m.Source,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save vendor payment "+m.PaymentID, err)
	}
	return nil
}

// ListPaymentsByShift retrieves every vendor payment recorded against a shift.
func (r *PgxVendorRepository) ListPaymentsByShift(ctx context.Context, shiftID string) ([]domain.VendorPayment, error) {
	query := `SELECT ` + vendorPaymentColumns + ` FROM vendor_payments WHERE shift_id = $1 ORDER BY created_at;`
	return r.queryPayments(ctx, query, shiftID)
}

// ListPaymentsByShiftIDs retrieves vendor payments across multiple shifts.
func (r *PgxVendorRepository) ListPaymentsByShiftIDs(ctx context.Context, shiftIDs []string) ([]domain.VendorPayment, error) {
	if len(shiftIDs) == 0 {
		return []domain.VendorPayment{}, nil
	}
	query := `SELECT ` + vendorPaymentColumns + ` FROM vendor_payments WHERE shift_id = ANY($1) ORDER BY created_at;`
	return r.queryPayments(ctx, query, shiftIDs)
}

// ListPaymentsByVendorInRange retrieves a vendor's payments created within [start, end].
func (r *PgxVendorRepository) ListPaymentsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.VendorPayment, error) {
	query := `
		SELECT ` + vendorPaymentColumns + ` FROM vendor_payments
		WHERE vendor_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at;
	`
	return r.queryPayments(ctx, query, vendorID, start, end)
}

func (r *PgxVendorRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.VendorPayment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vendor payments", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VendorPayment, error) {
		var p models.VendorPayment
		err := row.Scan(
			&p.PaymentID,
			&p.ShiftID,
			&p.VendorID,
			&p.Amount,
			&p.Source,
			&p.Description,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		return p, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan vendor payments", err)
	}
	return mapping.ToDomainVendorPaymentSlice(modelPayments), nil
}

const returnColumns = `return_id, shift_id, vendor_id, amount, description, created_at, last_updated_at`

// SaveReturn inserts a new return row.
func (r *PgxVendorRepository) SaveReturn(ctx context.Context, ret domain.Return) error {
	m := mapping.ToModelReturn(ret)

	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReturnID,
		m.ShiftID,
		m.VendorID,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save return "+m.ReturnID, err)
	}
	return nil
}

// ListReturnsByShift retrieves every return recorded against a shift.
func (r *PgxVendorRepository) ListReturnsByShift(ctx context.Context, shiftID string) ([]domain.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE shift_id = $1 ORDER BY created_at;`
	return r.queryReturns(ctx, query, shiftID)
}

// ListReturnsByVendorInRange retrieves a vendor's returns created within [start, end].
func (r *PgxVendorRepository) ListReturnsByVendorInRange(ctx context.Context, vendorID string, start, end time.Time) ([]domain.Return, error) {
	query := `
		SELECT ` + returnColumns + ` FROM returns
		WHERE vendor_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at;
	`
	return r.queryReturns(ctx, query, vendorID, start, end)
}

func (r *PgxVendorRepository) queryReturns(ctx context.Context, query string, args ...any) ([]domain.Return, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query returns", err)
	}
	defer rows.Close()

	modelReturns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Return, error) {
		var ret models.Return
		err := row.Scan(
			&ret.ReturnID,
			&ret.ShiftID,
			&ret.VendorID,
			&ret.Amount,
			&ret.Description,
			&ret.CreatedAt,
			&ret.LastUpdatedAt,
		)
		return ret, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan returns", err)
	}
	return mapping.ToDomainReturnSlice(modelReturns), nil
}
