package services

import (
	"context"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/dto"
)

// EntrySvcFacade defines operations on recorded entries.
type EntrySvcFacade interface {
	// CreateEntry uploads the audio to storage and records a new entry in the user's journal.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest, upload dto.AudioUpload) (*domain.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}
