package services

import (
	"context"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
)

// ReportingService defines read-only report queries over recorded history.
// Reports always recompute from raw rows; nothing here mutates state.
type ReportingService interface {
	// DailySummary aggregates a single date across its shifts.
	DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error)

	// ExpenseHeadTotals sums expenses per head over [start, end].
	ExpenseHeadTotals(ctx context.Context, start, end time.Time) ([]domain.ExpenseHeadTotal, error)

	// ExpensesReport lists every expense over [start, end] enriched with
	// date, shift and head context.
	ExpensesReport(ctx context.Context, start, end time.Time) ([]domain.ExpenseReportRow, error)

	// SalesSummary totals recorded sales per date over [start, end].
	SalesSummary(ctx context.Context, start, end time.Time) ([]domain.SalesSummaryRow, error)

	// WithdrawalsReport lists withdrawals over [start, end] with shift context.
	WithdrawalsReport(ctx context.Context, start, end time.Time) ([]domain.WithdrawalReportRow, error)

	// PaymentsReport lists vendor payments over [start, end] with shift and
	// vendor context.
	PaymentsReport(ctx context.Context, start, end time.Time) ([]domain.PaymentReportRow, error)
}
