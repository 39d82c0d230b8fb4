package mapping

import (
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		UserID:      d.UserID,
		Title:       d.Title,
		Content:     d.Content,
		IsPrivate:   d.IsPrivate,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		UserID:      m.UserID,
		Title:       m.Title,
		Content:     m.Content,
		IsPrivate:   m.IsPrivate,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainJournalSummary converts a joined summary row.
func ToDomainJournalSummary(m models.JournalSummary) domain.JournalSummary {
	return domain.JournalSummary{
		Journal:    ToDomainJournal(m.Journal),
		EntryCount: int(m.EntryCount),
	}
}

// ToDomainJournalSummarySlice converts a slice of summary rows.
func ToDomainJournalSummarySlice(ms []models.JournalSummary) []domain.JournalSummary {
	ds := make([]domain.JournalSummary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalSummary(m)
	}
	return ds
}

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt}
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt}
}
