package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface. Reports are
// composed in memory from the raw repositories; no aggregate is persisted.
type reportingService struct {
	BaseService
	shiftRepo   portsrepo.ShiftRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	shiftRepo portsrepo.ShiftRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	vendorRepo portsrepo.VendorRepositoryFacade,
) portssvc.ReportingService {
	return &reportingService{
		shiftRepo:   shiftRepo,
		expenseRepo: expenseRepo,
		vendorRepo:  vendorRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// DailySummary aggregates one date across its shifts. AvailableCash reflects
// the expected cash of the last shift of the day by the within-day ordering.
func (s *reportingService) DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	day := normalizeDate(date)
	shifts, err := s.shiftRepo.ListShiftsByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].ShiftName.Order() < shifts[j].ShiftName.Order()
	})

	summary := &domain.DailySummary{
		Date:                day,
		TotalSale:           decimal.Zero,
		TotalExpenses:       decimal.Zero,
		TotalWithdrawals:    decimal.Zero,
		TotalVendorPayments: decimal.Zero,
		AvailableCash:       decimal.Zero,
		Shifts:              shifts,
	}
	if len(shifts) == 0 {
		return summary, nil
	}

	shiftIDs := make([]string, len(shifts))
	for i, sh := range shifts {
		shiftIDs[i] = sh.ShiftID
		summary.TotalSale = summary.TotalSale.Add(sh.TotalSale)
	}

	expenses, err := s.expenseRepo.ListExpensesByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	for _, e := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
	}

	withdrawals, err := s.shiftRepo.ListWithdrawalsByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	for _, w := range withdrawals {
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(w.Amount)
	}

	payments, err := s.vendorRepo.ListPaymentsByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	for _, p := range payments {
		summary.TotalVendorPayments = summary.TotalVendorPayments.Add(p.Amount)
	}

	last := shifts[len(shifts)-1]
	if last.ExpectedCash != nil {
		summary.AvailableCash = *last.ExpectedCash
	}
	return summary, nil
}

// ExpenseHeadTotals sums expenses per head over [start, end], largest first.
func (s *reportingService) ExpenseHeadTotals(ctx context.Context, start, end time.Time) ([]domain.ExpenseHeadTotal, error) {
	expenses, _, err := s.expensesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	headNames, err := s.headNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		name := headNames[e.HeadID]
		totals[name] = totals[name].Add(e.Amount)
	}
	rows := make([]domain.ExpenseHeadTotal, 0, len(totals))
	for name, total := range totals {
		rows = append(rows, domain.ExpenseHeadTotal{HeadName: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total.Equal(rows[j].Total) {
			return rows[i].HeadName < rows[j].HeadName
		}
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows, nil
}

// ExpensesReport lists every expense over [start, end] with date, shift and
// head context, oldest first.
func (s *reportingService) ExpensesReport(ctx context.Context, start, end time.Time) ([]domain.ExpenseReportRow, error) {
	expenses, shiftsByID, err := s.expensesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	headNames, err := s.headNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ExpenseReportRow, 0, len(expenses))
	for _, e := range expenses {
		shift := shiftsByID[e.ShiftID]
		rows = append(rows, domain.ExpenseReportRow{
			Date:        shift.Date,
			ShiftName:   shift.ShiftName,
			HeadName:    headNames[e.HeadID],
			Amount:      e.Amount,
			Source:      e.Source,
			Description: e.Description,
		})
	}
	sortReportRows(rows, func(r domain.ExpenseReportRow) (time.Time, domain.ShiftName) {
		return r.Date, r.ShiftName
	})
	return rows, nil
}

// SalesSummary totals recorded sales per date over [start, end], oldest first.
func (s *reportingService) SalesSummary(ctx context.Context, start, end time.Time) ([]domain.SalesSummaryRow, error) {
	shifts, err := s.shiftRepo.ListShiftsInRange(ctx, normalizeDate(start), normalizeDate(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, sh := range shifts {
		totals[sh.Date] = totals[sh.Date].Add(sh.TotalSale)
	}
	rows := make([]domain.SalesSummaryRow, 0, len(totals))
	for date, total := range totals {
		rows = append(rows, domain.SalesSummaryRow{Date: date, TotalSale: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// WithdrawalsReport lists withdrawals over [start, end] with shift context.
func (s *reportingService) WithdrawalsReport(ctx context.Context, start, end time.Time) ([]domain.WithdrawalReportRow, error) {
	shiftIDs, shiftsByID, err := s.shiftsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(shiftIDs) == 0 {
		return []domain.WithdrawalReportRow{}, nil
	}

	withdrawals, err := s.shiftRepo.ListWithdrawalsByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	rows := make([]domain.WithdrawalReportRow, 0, len(withdrawals))
	for _, w := range withdrawals {
		shift := shiftsByID[w.ShiftID]
		rows = append(rows, domain.WithdrawalReportRow{
			Date:        shift.Date,
			ShiftName:   shift.ShiftName,
			Amount:      w.Amount,
			Description: w.Description,
		})
	}
	sortReportRows(rows, func(r domain.WithdrawalReportRow) (time.Time, domain.ShiftName) {
		return r.Date, r.ShiftName
	})
	return rows, nil
}

// PaymentsReport lists vendor payments over [start, end] with shift and
// vendor context.
func (s *reportingService) PaymentsReport(ctx context.Context, start, end time.Time) ([]domain.PaymentReportRow, error) {
	shiftIDs, shiftsByID, err := s.shiftsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(shiftIDs) == 0 {
		return []domain.PaymentReportRow{}, nil
	}

	payments, err := s.vendorRepo.ListPaymentsByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	vendorNames := make(map[string]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.VendorID] = v.Name
	}

	rows := make([]domain.PaymentReportRow, 0, len(payments))
	for _, p := range payments {
		shift := shiftsByID[p.ShiftID]
		rows = append(rows, domain.PaymentReportRow{
			Date:        shift.Date,
			ShiftName:   shift.ShiftName,
			VendorName:  vendorNames[p.VendorID],
			Amount:      p.Amount,
			Source:      p.Source,
			Description: p.Description,
		})
	}
	sortReportRows(rows, func(r domain.PaymentReportRow) (time.Time, domain.ShiftName) {
		return r.Date, r.ShiftName
	})
	return rows, nil
}

// shiftsInRange loads [start, end] shifts and returns their IDs plus an
// ID-indexed lookup.
func (s *reportingService) shiftsInRange(ctx context.Context, start, end time.Time) ([]string, map[string]domain.Shift, error) {
	shifts, err := s.shiftRepo.ListShiftsInRange(ctx, normalizeDate(start), normalizeDate(end))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	ids := make([]string, len(shifts))
	byID := make(map[string]domain.Shift, len(shifts))
	for i, sh := range shifts {
		ids[i] = sh.ShiftID
		byID[sh.ShiftID] = sh
	}
	return ids, byID, nil
}

// expensesInRange loads every expense against shifts in [start, end].
func (s *reportingService) expensesInRange(ctx context.Context, start, end time.Time) ([]domain.Expense, map[string]domain.Shift, error) {
	shiftIDs, shiftsByID, err := s.shiftsInRange(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	if len(shiftIDs) == 0 {
		return []domain.Expense{}, shiftsByID, nil
	}
	expenses, err := s.expenseRepo.ListExpensesByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, shiftsByID, nil
}

// headNamesByID builds a head-id to name lookup.
func (s *reportingService) headNamesByID(ctx context.Context) (map[string]string, error) {
	heads, err := s.expenseRepo.ListExpenseHeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense heads: %w", err)
	}
	names := make(map[string]string, len(heads))
	for _, h := range heads {
		names[h.HeadID] = h.Name
	}
	return names, nil
}

// sortReportRows orders rows by date, then by the within-day shift ordering.
func sortReportRows[T any](rows []T, key func(T) (time.Time, domain.ShiftName)) {
	sort.SliceStable(rows, func(i, j int) bool {
		di, si := key(rows[i])
		dj, sj := key(rows[j])
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return si.Order() < sj.Order()
	})
}
