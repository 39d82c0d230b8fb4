package pgsql

import (
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo: newPgxJournalRepository(dbPool),
		EntryRepo:   newPgxEntryRepository(dbPool),
	}
}
