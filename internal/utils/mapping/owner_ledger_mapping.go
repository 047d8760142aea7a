package mapping

import (
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/models"
)

// ToModelOwnerLedgerEntry converts a domain OwnerLedgerEntry to a model OwnerLedgerEntry
func ToModelOwnerLedgerEntry(d domain.OwnerLedgerEntry) models.OwnerLedgerEntry {
	return models.OwnerLedgerEntry{
		EntryID:         d.EntryID,
		Amount:          d.Amount,
		Description:     d.Description,
		ShiftID:         d.ShiftID,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOwnerLedgerEntry converts a model OwnerLedgerEntry to a domain OwnerLedgerEntry
func ToDomainOwnerLedgerEntry(m models.OwnerLedgerEntry) domain.OwnerLedgerEntry {
	return domain.OwnerLedgerEntry{
		EntryID:         m.EntryID,
		Amount:          m.Amount,
		Description:     m.Description,
		ShiftID:         m.ShiftID,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOwnerLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainOwnerLedgerEntrySlice(ms []models.OwnerLedgerEntry) []domain.OwnerLedgerEntry {
	ds := make([]domain.OwnerLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOwnerLedgerEntry(m)
	}
	return ds
}
