package domain

import (
	"fmt"
	"time"
)

// SentimentLabel is one of a closed set of emotion labels.
type SentimentLabel string

const (
	SentimentJoy      SentimentLabel = "joy"
	SentimentSadness  SentimentLabel = "sadness"
	SentimentAnger    SentimentLabel = "anger"
	SentimentFear     SentimentLabel = "fear"
	SentimentSurprise SentimentLabel = "surprise"
	SentimentDisgust  SentimentLabel = "disgust"
	SentimentNeutral  SentimentLabel = "neutral"
)

var sentimentLabels = map[SentimentLabel]struct{}{
	SentimentJoy:      {},
	SentimentSadness:  {},
	SentimentAnger:    {},
	SentimentFear:     {},
	SentimentSurprise: {},
	SentimentDisgust:  {},
	SentimentNeutral:  {},
}

// IsValid reports whether l belongs to the closed label set.
func (l SentimentLabel) IsValid() bool {
	_, ok := sentimentLabels[l]
	return ok
}

// Sentiment is a label with a confidence score in [0, 1].
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// Validate checks the label set and the score range.
func (s Sentiment) Validate() error {
	if !s.Label.IsValid() {
		return fmt.Errorf("unknown sentiment label %q", s.Label)
	}
	if s.Score < 0 || s.Score > 1 {
		return fmt.Errorf("sentiment score %v outside [0,1]", s.Score)
	}
	return nil
}

// Entry is a single recorded audio note inside a journal.
type Entry struct {
	EntryID         string      `json:"entryID"`
	UserID          string      `json:"userID"`
	JournalID       string      `json:"journalID"`
	AudioURL        string      `json:"audioURL"`
	Transcript      *string     `json:"transcript,omitempty"`
	Sentiment       *Sentiment  `json:"sentiment,omitempty"`
	Emotions        []Sentiment `json:"emotions,omitempty"`
	DurationSeconds *float64    `json:"durationSeconds,omitempty"`
	Language        *string     `json:"language,omitempty"`
	IsPrivate       bool        `json:"isPrivate"`
	TranscribedAt   *time.Time  `json:"transcribedAt,omitempty"`
	AuditFields
}

// HasTranscript reports whether a transcript has already been attached.
func (e Entry) HasTranscript() bool {
	return e.Transcript != nil
}

// StoredTranscript rebuilds the transcript previously attached to the entry.
func (e Entry) StoredTranscript() Transcript {
	t := Transcript{Language: e.Language, Sentiment: e.Sentiment, Emotions: e.Emotions}
	if e.Transcript != nil {
		t.Text = *e.Transcript
	}
	return t
}
