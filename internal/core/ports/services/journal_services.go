package services

import (
	"context"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournal retrieves a journal owned by userID together with its entries.
	GetJournal(ctx context.Context, userID, journalID string) (*domain.JournalWithEntries, error)

	// ListJournals retrieves a page of the user's journals with entry counts.
	ListJournals(ctx context.Context, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// TopJournals returns the user's k most active journals. k <= 0 means the default of 3.
	TopJournals(ctx context.Context, userID string, k int) ([]domain.JournalSummary, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	CreateJournal(ctx context.Context, userID string, req dto.CreateJournalRequest) (*domain.Journal, error)
	UpdateJournal(ctx context.Context, userID, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error)
	DeleteJournal(ctx context.Context, userID, journalID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
