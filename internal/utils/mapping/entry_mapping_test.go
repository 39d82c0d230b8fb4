package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEntrySentimentFlattening(t *testing.T) {
	text := "hello world"
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	d := domain.Entry{
		EntryID:       "e1",
		UserID:        "u1",
		JournalID:     "j1",
		AudioURL:      "https://voice-notes.s3.us-east-1.amazonaws.com/e1.mp3",
		Transcript:    &text,
		Sentiment:     &domain.Sentiment{Label: domain.SentimentJoy, Score: 0.82},
		TranscribedAt: &now,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	m := ToModelEntry(d)
	if assert.NotNil(t, m.SentimentLabel) && assert.NotNil(t, m.SentimentScore) {
		assert.Equal(t, "joy", *m.SentimentLabel)
		assert.Equal(t, 0.82, *m.SentimentScore)
	}
	assert.Equal(t, d, ToDomainEntry(m))
}

func TestEntryWithoutSentiment(t *testing.T) {
	label := "joy"
	m := models.Entry{EntryID: "e1", SentimentLabel: &label}

	d := ToDomainEntry(m)

	assert.Nil(t, d.Sentiment, "half-populated sentiment columns must not produce a sentiment")
	assert.Nil(t, ToModelEntry(domain.Entry{EntryID: "e1"}).SentimentLabel)
}

func TestEntryEmotionsRoundTrip(t *testing.T) {
	d := domain.Entry{
		EntryID: "e1",
		Emotions: []domain.Sentiment{
			{Label: domain.SentimentJoy, Score: 0.91},
			{Label: domain.SentimentNeutral, Score: 0.05},
		},
	}

	m := ToModelEntry(d)

	assert.Equal(t, []models.Emotion{{Label: "joy", Score: 0.91}, {Label: "neutral", Score: 0.05}}, m.Emotions)
	assert.Equal(t, d.Emotions, ToDomainEntry(m).Emotions)
	assert.Nil(t, ToModelEntry(domain.Entry{EntryID: "e2"}).Emotions)
}
