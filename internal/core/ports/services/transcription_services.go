package services

import (
	"context"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// TranscriptionSvc runs audio through the transcription pipeline.
type TranscriptionSvc interface {
	// TranscribeLocator transcribes the object behind a storage locator the user has recorded.
	TranscribeLocator(ctx context.Context, userID, locator string) (*domain.Transcript, error)

	// TranscribeEntry transcribes an entry and attaches the result to it.
	// A stored transcript is returned as-is unless force is set.
	TranscribeEntry(ctx context.Context, userID, entryID string, force bool) (*domain.TranscriptionResult, error)
}
