package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// TranscribeRequest is the body of POST /transcribe.
// s3Url is accepted for clients that still send the old field name.
type TranscribeRequest struct {
	AudioLocator string `json:"audioLocator" binding:"required_without=S3URL"`
	S3URL        string `json:"s3Url"`
}

// Locator returns the locator the client supplied, preferring audioLocator.
func (r TranscribeRequest) Locator() string {
	if loc := strings.TrimSpace(r.AudioLocator); loc != "" {
		return loc
	}
	return strings.TrimSpace(r.S3URL)
}

// TranscribeEntryParams are the query parameters of POST /entries/:entryID/transcription.
type TranscribeEntryParams struct {
	Force bool `form:"force"`
}

// SentimentResponse is a sentiment label and score.
type SentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TranscriptionResponse is the normalized transcription result.
type TranscriptionResponse struct {
	Text      string             `json:"text"`
	Language  *string            `json:"language,omitempty"`
	Sentiment *SentimentResponse `json:"sentiment,omitempty"`
}

// EntryTranscriptionResponse is returned when an entry is transcribed.
// Emotions is the full distribution, strongest first, when the service reports one.
type EntryTranscriptionResponse struct {
	EntryID       string                `json:"entryID"`
	Cached        bool                  `json:"cached"`
	Transcript    TranscriptionResponse `json:"transcript"`
	Emotions      []SentimentResponse   `json:"emotions,omitempty"`
	TranscribedAt *time.Time            `json:"transcribedAt,omitempty"`
}

// ToTranscriptionResponse converts a domain.Transcript to TranscriptionResponse DTO.
func ToTranscriptionResponse(t *domain.Transcript) TranscriptionResponse {
	return TranscriptionResponse{
		Text:      t.Text,
		Language:  t.Language,
		Sentiment: toSentimentResponse(t.Sentiment),
	}
}

// ToEntryTranscriptionResponse converts a domain.TranscriptionResult.
func ToEntryTranscriptionResponse(r *domain.TranscriptionResult) EntryTranscriptionResponse {
	return EntryTranscriptionResponse{
		EntryID:       r.EntryID,
		Cached:        r.Cached,
		Transcript:    ToTranscriptionResponse(&r.Transcript),
		Emotions:      toSentimentResponses(r.Transcript.Emotions),
		TranscribedAt: r.TranscribedAt,
	}
}

func toSentimentResponse(s *domain.Sentiment) *SentimentResponse {
	if s == nil {
		return nil
	}
	return &SentimentResponse{Label: string(s.Label), Score: s.Score}
}

func toSentimentResponses(ss []domain.Sentiment) []SentimentResponse {
	if len(ss) == 0 {
		return nil
	}
	out := make([]SentimentResponse, len(ss))
	for i, s := range ss {
		out[i] = SentimentResponse{Label: string(s.Label), Score: s.Score}
	}
	return out
}
