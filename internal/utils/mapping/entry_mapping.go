package mapping

import (
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	m := models.Entry{
		EntryID:         d.EntryID,
		UserID:          d.UserID,
		JournalID:       d.JournalID,
		AudioURL:        d.AudioURL,
		Transcript:      d.Transcript,
		DurationSeconds: d.DurationSeconds,
		Language:        d.Language,
		IsPrivate:       d.IsPrivate,
		TranscribedAt:   d.TranscribedAt,
		AuditFields:     toModelAudit(d.AuditFields),
	}
	if d.Sentiment != nil {
		label := string(d.Sentiment.Label)
		score := d.Sentiment.Score
		m.SentimentLabel = &label
		m.SentimentScore = &score
	}
	if len(d.Emotions) > 0 {
		m.Emotions = make([]models.Emotion, len(d.Emotions))
		for i, e := range d.Emotions {
			m.Emotions[i] = models.Emotion{Label: string(e.Label), Score: e.Score}
		}
	}
	return m
}

// ToDomainEntry converts a model Entry to a domain Entry.
// A sentiment is only rebuilt when both of its columns are set.
func ToDomainEntry(m models.Entry) domain.Entry {
	d := domain.Entry{
		EntryID:         m.EntryID,
		UserID:          m.UserID,
		JournalID:       m.JournalID,
		AudioURL:        m.AudioURL,
		Transcript:      m.Transcript,
		DurationSeconds: m.DurationSeconds,
		Language:        m.Language,
		IsPrivate:       m.IsPrivate,
		TranscribedAt:   m.TranscribedAt,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
	if m.SentimentLabel != nil && m.SentimentScore != nil {
		d.Sentiment = &domain.Sentiment{
			Label: domain.SentimentLabel(*m.SentimentLabel),
			Score: *m.SentimentScore,
		}
	}
	if len(m.Emotions) > 0 {
		d.Emotions = make([]domain.Sentiment, len(m.Emotions))
		for i, e := range m.Emotions {
			d.Emotions[i] = domain.Sentiment{Label: domain.SentimentLabel(e.Label), Score: e.Score}
		}
	}
	return d
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
