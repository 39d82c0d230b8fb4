package dto

import (
	"io"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// CreateEntryRequest holds the form fields of POST /records besides the file itself.
type CreateEntryRequest struct {
	JournalID string `form:"journalID" binding:"required,uuid"`
}

// AudioUpload is an uploaded audio file as received from the client.
type AudioUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	JournalID       string              `json:"journalID"`
	AudioURL        string              `json:"audioURL"`
	Transcript      *string             `json:"transcript,omitempty"`
	Sentiment       *SentimentResponse  `json:"sentiment,omitempty"`
	Emotions        []SentimentResponse `json:"emotions,omitempty"`
	DurationSeconds *float64            `json:"durationSeconds,omitempty"`
	Language        *string             `json:"language,omitempty"`
	IsPrivate       bool                `json:"isPrivate"`
	TranscribedAt   *time.Time          `json:"transcribedAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		JournalID:       e.JournalID,
		AudioURL:        e.AudioURL,
		Transcript:      e.Transcript,
		Sentiment:       toSentimentResponse(e.Sentiment),
		Emotions:        toSentimentResponses(e.Emotions),
		DurationSeconds: e.DurationSeconds,
		Language:        e.Language,
		IsPrivate:       e.IsPrivate,
		TranscribedAt:   e.TranscribedAt,
		CreatedAt:       e.CreatedAt,
		LastUpdatedAt:   e.LastUpdatedAt,
	}
}

// ToEntryResponses converts a slice of domain.Entry to []EntryResponse.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
