package accounting

import (
	"sort"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpectedCash computes the till amount that should be present for a shift
// from its recorded money movements. Only movements funded from sales cash
// reduce the till; owner-pocket movements bypass it. Withdrawals always
// reduce the till.
//
//	expected = opening + sale
//	         - sales_cash expenses
//	         - sales_cash vendor payments
//	         - cash purchases funded from sales_cash
//	         - withdrawals
//
// This is used in both the shift service and tests to keep the reconciliation
// rule in exactly one place.
func ExpectedCash(
	openingCash decimal.Decimal,
	totalSale decimal.Decimal,
	expenses []domain.Expense,
	payments []domain.VendorPayment,
	purchases []domain.Purchase,
	withdrawals []domain.Withdrawal,
) decimal.Decimal {
	expected := openingCash.Add(totalSale)

	for _, e := range expenses {
		if e.Source == domain.SalesCash {
			expected = expected.Sub(e.Amount)
		}
	}
	for _, p := range payments {
		if p.Source == domain.SalesCash {
			expected = expected.Sub(p.Amount)
		}
	}
	for _, p := range purchases {
		if p.ReducesTill() {
			expected = expected.Sub(p.Amount)
		}
	}
	for _, w := range withdrawals {
		expected = expected.Sub(w.Amount)
	}

	return expected
}

// VendorTxn is one vendor-affecting movement flattened for the ledger fold.
// Seq preserves fetch order so the chronological sort stays stable for ties.
type VendorTxn struct {
	At          time.Time
	Kind        domain.VendorLedgerRowKind
	PaymentType domain.PaymentType // purchases only
	Amount      decimal.Decimal
	Description string
	Seq         int
}

// FlattenVendorHistory merges a vendor's purchases, payments and returns into
// a single transaction list ready for BuildVendorLedgerRows.
func FlattenVendorHistory(
	purchases []domain.Purchase,
	payments []domain.VendorPayment,
	returns []domain.Return,
) []VendorTxn {
	txns := make([]VendorTxn, 0, len(purchases)+len(payments)+len(returns))
	for _, p := range purchases {
		txns = append(txns, VendorTxn{
			At:          p.CreatedAt,
			Kind:        domain.LedgerPurchase,
			PaymentType: p.PaymentType,
			Amount:      p.Amount,
			Description: p.Description,
			Seq:         len(txns),
		})
	}
	for _, p := range payments {
		txns = append(txns, VendorTxn{
			At:          p.CreatedAt,
			Kind:        domain.LedgerPayment,
			Amount:      p.Amount,
			Description: p.Description,
			Seq:         len(txns),
		})
	}
	for _, r := range returns {
		txns = append(txns, VendorTxn{
			At:          r.CreatedAt,
			Kind:        domain.LedgerReturn,
			Amount:      r.Amount,
			Description: r.Description,
			Seq:         len(txns),
		})
	}
	return txns
}

// BuildVendorLedgerRows folds a vendor's transaction history into statement
// rows with a running balance. The fold starts from the vendor's opening
// balance (emitted as the first row) and processes transactions in
// chronological order; the sort is stable on Seq because reordering ties
// would change every subsequent balance.
//
// Balance effects: credit purchases add, payments and returns subtract.
// Cash purchases were settled when they happened, so they appear as
// informational "(cash)" rows that leave the balance unchanged.
func BuildVendorLedgerRows(openingBalance decimal.Decimal, openedAt time.Time, txns []VendorTxn) []domain.VendorLedgerRow {
	sorted := make([]VendorTxn, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].At.Equal(sorted[j].At) {
			return sorted[i].Seq < sorted[j].Seq
		}
		return sorted[i].At.Before(sorted[j].At)
	})

	rows := make([]domain.VendorLedgerRow, 0, len(sorted)+1)
	balance := openingBalance
	rows = append(rows, domain.VendorLedgerRow{
		EntryDate: openedAt,
		Kind:      domain.LedgerOpening,
		Debit:     decimal.Zero,
		Credit:    decimal.Zero,
		Balance:   balance,
	})

	for _, txn := range sorted {
		row := domain.VendorLedgerRow{
			EntryDate:   txn.At,
			Kind:        txn.Kind,
			Description: txn.Description,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		switch txn.Kind {
		case domain.LedgerPurchase:
			if txn.PaymentType == domain.PaymentCredit {
				balance = balance.Add(txn.Amount)
				row.Debit = txn.Amount
			} else {
				row.Note = "(cash)"
			}
		case domain.LedgerPayment, domain.LedgerReturn:
			balance = balance.Sub(txn.Amount)
			row.Credit = txn.Amount
		}
		row.Balance = balance
		rows = append(rows, row)
	}

	return rows
}

// OwnerRunningBalance returns the cumulative balance after each owner ledger
// entry, in the given order. Callers sort by transaction date first.
func OwnerRunningBalance(entries []domain.OwnerLedgerEntry) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(entries))
	sum := decimal.Zero
	for i, e := range entries {
		sum = sum.Add(e.Amount)
		balances[i] = sum
	}
	return balances
}
