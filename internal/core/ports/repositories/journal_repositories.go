package repositories

import (
	"context"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// JournalReader defines read operations for journal data.
// Every lookup is scoped to the owning user; a journal owned by someone else is reported as not found.
type JournalReader interface {
	// FindJournalByIDForUser retrieves a journal owned by userID.
	FindJournalByIDForUser(ctx context.Context, journalID, userID string) (*domain.Journal, error)

	// ListJournalSummaries retrieves a page of the user's journals, newest first, with their entry counts.
	// It returns the summaries, a token for the next page, and an error.
	ListJournalSummaries(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.JournalSummary, *string, error)

	// ListAllJournalSummaries retrieves every journal of the user with its entry count, unordered.
	ListAllJournalSummaries(ctx context.Context, userID string) ([]domain.JournalSummary, error)
}

// JournalWriter defines write operations for journal data.
// Mutations re-check ownership inside the same transaction as the write.
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournal applies upd to a journal owned by userID and returns the stored result.
	UpdateJournal(ctx context.Context, userID, journalID string, upd domain.JournalUpdate) (*domain.Journal, error)

	// DeleteJournal removes a journal owned by userID together with its entries.
	DeleteJournal(ctx context.Context, userID, journalID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
