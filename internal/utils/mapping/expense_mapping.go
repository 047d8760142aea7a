package mapping

import (
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/models"
)

// ToModelExpenseHead converts a domain ExpenseHead to a model ExpenseHead
func ToModelExpenseHead(d domain.ExpenseHead) models.ExpenseHead {
	return models.ExpenseHead{
		HeadID:      d.HeadID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseHead converts a model ExpenseHead to a domain ExpenseHead
func ToDomainExpenseHead(m models.ExpenseHead) domain.ExpenseHead {
	return domain.ExpenseHead{
		HeadID:      m.HeadID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseHeadSlice converts a slice of model ExpenseHeads to domain ExpenseHeads
func ToDomainExpenseHeadSlice(ms []models.ExpenseHead) []domain.ExpenseHead {
	ds := make([]domain.ExpenseHead, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseHead(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to a model Expense.
// HeadName is an enrichment field and is not persisted.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		ShiftID:     d.ShiftID,
		HeadID:      d.HeadID,
		Amount:      d.Amount,
		Source:      string(d.Source),
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ShiftID:     m.ShiftID,
		HeadID:      m.HeadID,
		Amount:      m.Amount,
		Source:      domain.FundingSource(m.Source),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
