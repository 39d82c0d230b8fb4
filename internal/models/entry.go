package models

import "time"

// Entry is a row of the entries table. Sentiment is stored flattened.
type Entry struct {
	EntryID         string     `db:"entry_id"`
	UserID          string     `db:"user_id"`
	JournalID       string     `db:"journal_id"`
	AudioURL        string     `db:"audio_url"`
	Transcript      *string    `db:"transcript"`
	SentimentLabel  *string    `db:"sentiment_label"`
	SentimentScore  *float64   `db:"sentiment_score"`
	Emotions        []Emotion  `db:"emotions"`
	DurationSeconds *float64   `db:"duration_seconds"`
	Language        *string    `db:"language"`
	IsPrivate       bool       `db:"is_private"`
	TranscribedAt   *time.Time `db:"transcribed_at"`
	AuditFields
}

// Emotion is one element of the emotions JSONB column.
type Emotion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
