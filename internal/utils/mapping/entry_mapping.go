package mapping

import (
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/sgcontabil/sgc_backend/internal/models"
)

// ToModelEntry converts a domain.JournalEntry for DB storage (lines excluded).
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNumber: d.EntryNumber,
		PostingDate: d.PostingDate,
		AccrualDate: d.AccrualDate,
		EntryType:   models.EntryType(d.EntryType),
		Narrative:   d.Narrative,
		Amount:      d.Amount,
		Origin:      d.Origin,
		OriginID:    d.OriginID,
		Status:      models.EntryStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a stored models.JournalEntry back to the domain type.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		PostingDate: m.PostingDate,
		AccrualDate: m.AccrualDate,
		EntryType:   domain.EntryType(m.EntryType),
		Narrative:   m.Narrative,
		Amount:      m.Amount,
		Origin:      m.Origin,
		OriginID:    m.OriginID,
		Status:      domain.EntryStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of models.JournalEntry.
func ToDomainEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainEntry(m)
	}
	return out
}

// ToModelLine converts a domain.JournalLine for DB storage.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		CostCenterID: d.CostCenterID,
		Side:         models.LineSide(d.Side),
		Amount:       d.Amount,
		Memo:         d.Memo,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLine converts a stored models.JournalLine back to the domain type.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:             m.LineID,
		EntryID:            m.EntryID,
		AccountID:          m.AccountID,
		CostCenterID:       m.CostCenterID,
		Side:               domain.LineSide(m.Side),
		Amount:             m.Amount,
		Memo:               m.Memo,
		AccountCode:        m.AccountCode,
		AccountDescription: m.AccountDescription,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineSlice converts a slice of models.JournalLine.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLine(m)
	}
	return out
}

// ToDomainAuditEvent converts a stored models.EntryAuditEvent.
func ToDomainAuditEvent(m models.EntryAuditEvent) domain.EntryAuditEvent {
	return domain.EntryAuditEvent{
		AuditID:   m.AuditID,
		EntryID:   m.EntryID,
		Action:    domain.AuditAction(m.Action),
		Reason:    m.Reason,
		ActorID:   m.ActorID,
		CreatedAt: m.CreatedAt,
	}
}
