package mapping

import (
	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry.
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:         d.EntryID,
		HospitalID:      d.HospitalID,
		TransactionDate: d.TransactionDate,
		AccountID:       d.AccountID,
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		Description:     d.Description,
		ReferenceType:   string(d.ReferenceType),
		ReferenceID:     d.ReferenceID,
		CostCenter:      d.CostCenter,
		FiscalPeriodID:  d.FiscalPeriodID,
		Status:          models.EntryStatus(d.Status),
		ReversesID:      d.ReversesID,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainEntry converts a model Entry to a domain Entry.
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:         m.EntryID,
		HospitalID:      m.HospitalID,
		TransactionDate: m.TransactionDate,
		AccountID:       m.AccountID,
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		Description:     m.Description,
		ReferenceType:   domain.ReferenceType(m.ReferenceType),
		ReferenceID:     m.ReferenceID,
		CostCenter:      m.CostCenter,
		FiscalPeriodID:  m.FiscalPeriodID,
		Status:          domain.EntryStatus(m.Status),
		ReversesID:      m.ReversesID,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainEntrySlice converts a slice of model Entries to domain Entries.
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
