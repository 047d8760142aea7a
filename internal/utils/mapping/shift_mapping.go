package mapping

import (
	"github.com/shiftbook/shift_cash_app/internal/core/domain"
	"github.com/shiftbook/shift_cash_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:            d.ShiftID,
		Date:               d.Date,
		ShiftName:          string(d.ShiftName),
		OpeningCash:        d.OpeningCash,
		TotalSale:          d.TotalSale,
		ExpectedCash:       d.ExpectedCash,
		ClosingCashEntered: d.ClosingCashEntered,
		Status:             string(d.Status),
		ClosedAt:           d.ClosedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:            m.ShiftID,
		Date:               m.Date,
		ShiftName:          domain.ShiftName(m.ShiftName),
		OpeningCash:        m.OpeningCash,
		TotalSale:          m.TotalSale,
		ExpectedCash:       m.ExpectedCash,
		ClosingCashEntered: m.ClosingCashEntered,
		Status:             domain.ShiftStatus(m.Status),
		ClosedAt:           m.ClosedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
