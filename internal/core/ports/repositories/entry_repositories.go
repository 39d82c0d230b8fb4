package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// EntryReader defines ownership-scoped read operations for entries.
type EntryReader interface {
	FindEntryByIDForUser(ctx context.Context, entryID, userID string) (*domain.Entry, error)

	// FindEntryByAudioURL looks up the user's entry that stores audioURL.
	FindEntryByAudioURL(ctx context.Context, userID, audioURL string) (*domain.Entry, error)

	// ListEntriesByJournal lists the entries of a journal owned by userID, newest first.
	ListEntriesByJournal(ctx context.Context, journalID, userID string) ([]domain.Entry, error)
}

// EntryWriter defines write operations for entries.
type EntryWriter interface {
	// SaveEntry inserts an entry after checking that its journal belongs to entry.UserID.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	DeleteEntry(ctx context.Context, userID, entryID string) error

	// AttachTranscript stores t on an entry owned by userID, replacing any previous transcript.
	AttachTranscript(ctx context.Context, userID, entryID string, t domain.Transcript, at time.Time) (*domain.Entry, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
