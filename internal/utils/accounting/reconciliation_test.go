package accounting_test

import (
	"testing"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func srcPtr(s domain.FundingSource) *domain.FundingSource {
	return &s
}

func TestExpectedCash_OwnerPocketExcluded(t *testing.T) {
	// opening 0, sale 5000, sales_cash expense 200, owner_pocket expense 300
	expenses := []domain.Expense{
		{Amount: dec(200), Source: domain.SalesCash},
		{Amount: dec(300), Source: domain.OwnerPocket},
	}

	got := accounting.ExpectedCash(decimal.Zero, dec(5000), expenses, nil, nil, nil)
	assert.True(t, dec(4800).Equal(got), "owner_pocket expense must not touch the till, got %s", got)
}

func TestExpectedCash_AllMovementKinds(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: dec(150), Source: domain.SalesCash},
		{Amount: dec(999), Source: domain.OwnerPocket},
	}
	payments := []domain.VendorPayment{
		{Amount: dec(250), Source: domain.SalesCash},
		{Amount: dec(400), Source: domain.OwnerPocket},
	}
	purchases := []domain.Purchase{
		{Amount: dec(100), PaymentType: domain.PaymentCash, SourceIfCash: srcPtr(domain.SalesCash)},
		{Amount: dec(700), PaymentType: domain.PaymentCash, SourceIfCash: srcPtr(domain.OwnerPocket)},
		{Amount: dec(800), PaymentType: domain.PaymentCredit},
	}
	withdrawals := []domain.Withdrawal{
		{Amount: dec(300)},
		{Amount: dec(50)},
	}

	// 1000 + 6000 - 150 - 250 - 100 - 350 = 6150
	got := accounting.ExpectedCash(dec(1000), dec(6000), expenses, payments, purchases, withdrawals)
	assert.True(t, dec(6150).Equal(got), "got %s", got)
}

func TestExpectedCash_NoMovements(t *testing.T) {
	got := accounting.ExpectedCash(dec(500), decimal.Zero, nil, nil, nil, nil)
	assert.True(t, dec(500).Equal(got))
}

func TestBuildVendorLedgerRows_Scenario(t *testing.T) {
	// opening 1000; credit purchase 500 -> 1500; payment 200 -> 1300;
	// return 100 -> 1200; cash purchase 300 -> unchanged at 1200.
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	txns := []accounting.VendorTxn{
		{At: base, Kind: domain.LedgerPurchase, PaymentType: domain.PaymentCredit, Amount: dec(500), Seq: 0},
		{At: base.Add(1 * time.Hour), Kind: domain.LedgerPayment, Amount: dec(200), Seq: 1},
		{At: base.Add(2 * time.Hour), Kind: domain.LedgerReturn, Amount: dec(100), Seq: 2},
		{At: base.Add(3 * time.Hour), Kind: domain.LedgerPurchase, PaymentType: domain.PaymentCash, Amount: dec(300), Seq: 3},
	}

	rows := accounting.BuildVendorLedgerRows(dec(1000), base, txns)
	require.Len(t, rows, 5)

	assert.Equal(t, domain.LedgerOpening, rows[0].Kind)
	assert.True(t, dec(1000).Equal(rows[0].Balance))

	assert.True(t, dec(500).Equal(rows[1].Debit))
	assert.True(t, dec(1500).Equal(rows[1].Balance))

	assert.True(t, dec(200).Equal(rows[2].Credit))
	assert.True(t, dec(1300).Equal(rows[2].Balance))

	assert.True(t, dec(100).Equal(rows[3].Credit))
	assert.True(t, dec(1200).Equal(rows[3].Balance))

	// Cash purchase: informational only, balance untouched.
	assert.Equal(t, "(cash)", rows[4].Note)
	assert.True(t, rows[4].Debit.IsZero())
	assert.True(t, rows[4].Credit.IsZero())
	assert.True(t, dec(1200).Equal(rows[4].Balance))
}

func TestBuildVendorLedgerRows_OutOfOrderInputSorted(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	txns := []accounting.VendorTxn{
		{At: base.Add(2 * time.Hour), Kind: domain.LedgerPayment, Amount: dec(200), Seq: 0},
		{At: base, Kind: domain.LedgerPurchase, PaymentType: domain.PaymentCredit, Amount: dec(500), Seq: 1},
	}

	rows := accounting.BuildVendorLedgerRows(decimal.Zero, base, txns)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.LedgerPurchase, rows[1].Kind)
	assert.True(t, dec(500).Equal(rows[1].Balance))
	assert.True(t, dec(300).Equal(rows[2].Balance))
}

func TestBuildVendorLedgerRows_StableForTies(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	txns := []accounting.VendorTxn{
		{At: at, Kind: domain.LedgerPurchase, PaymentType: domain.PaymentCredit, Amount: dec(500), Description: "first", Seq: 0},
		{At: at, Kind: domain.LedgerPayment, Amount: dec(500), Description: "second", Seq: 1},
	}

	rows := accounting.BuildVendorLedgerRows(decimal.Zero, at, txns)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[1].Description)
	assert.True(t, dec(500).Equal(rows[1].Balance))
	assert.Equal(t, "second", rows[2].Description)
	assert.True(t, rows[2].Balance.IsZero())
}

func TestFlattenVendorHistory(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	purchases := []domain.Purchase{{
		Amount:      dec(500),
		PaymentType: domain.PaymentCredit,
		AuditFields: domain.AuditFields{CreatedAt: base},
	}}
	payments := []domain.VendorPayment{{
		Amount:      dec(200),
		AuditFields: domain.AuditFields{CreatedAt: base.Add(time.Hour)},
	}}
	returns := []domain.Return{{
		Amount:      dec(100),
		AuditFields: domain.AuditFields{CreatedAt: base.Add(2 * time.Hour)},
	}}

	txns := accounting.FlattenVendorHistory(purchases, payments, returns)
	require.Len(t, txns, 3)
	assert.Equal(t, domain.LedgerPurchase, txns[0].Kind)
	assert.Equal(t, domain.LedgerPayment, txns[1].Kind)
	assert.Equal(t, domain.LedgerReturn, txns[2].Kind)
	for i, txn := range txns {
		assert.Equal(t, i, txn.Seq)
	}
}

func TestOwnerRunningBalance(t *testing.T) {
	entries := []domain.OwnerLedgerEntry{
		{Amount: dec(300)},
		{Amount: dec(-100)},
		{Amount: dec(50)},
	}

	balances := accounting.OwnerRunningBalance(entries)
	require.Len(t, balances, 3)
	assert.True(t, dec(300).Equal(balances[0]))
	assert.True(t, dec(200).Equal(balances[1]))
	assert.True(t, dec(250).Equal(balances[2]))
}
