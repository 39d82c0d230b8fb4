package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/voice_journal_app/internal/models"
	"github.com/SscSPs/voice_journal_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, user_id, journal_id, audio_url, transcript, sentiment_label, sentiment_score, emotions,
	duration_seconds, language, is_private, transcribed_at, created_at, last_updated_at`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryWithTx
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

func collectOneEntry(rows pgx.Rows, err error) (*domain.Entry, error) {
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan entry", err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

func (r *PgxEntryRepository) FindEntryByIDForUser(ctx context.Context, entryID, userID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1 AND user_id = $2;`
	return collectOneEntry(r.Pool.Query(ctx, query, entryID, userID))
}

func (r *PgxEntryRepository) FindEntryByAudioURL(ctx context.Context, userID, audioURL string) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM entries
		WHERE user_id = $1 AND audio_url = $2
		ORDER BY created_at DESC
		LIMIT 1;`
	return collectOneEntry(r.Pool.Query(ctx, query, userID, audioURL))
}

func (r *PgxEntryRepository) ListEntriesByJournal(ctx context.Context, journalID, userID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM entries
		WHERE journal_id = $1 AND user_id = $2
		ORDER BY created_at DESC, entry_id DESC;`
	rows, err := r.Pool.Query(ctx, query, journalID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan entries", err)
	}
	return mapping.ToDomainEntrySlice(ms), nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// The journal must stay owned by the same user until the insert commits.
	if _, err := lockJournalForUser(ctx, tx, entry.JournalID, entry.UserID); err != nil {
		return err
	}

	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.JournalID,
		m.AudioURL,
		m.Transcript,
		m.SentimentLabel,
		m.SentimentScore,
		m.Emotions,
		m.DurationSeconds,
		m.Language,
		m.IsPrivate,
		m.TranscribedAt,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1 AND user_id = $2;`, entryID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) AttachTranscript(ctx context.Context, userID, entryID string, t domain.Transcript, at time.Time) (*domain.Entry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	lockQuery := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1 AND user_id = $2 FOR UPDATE;`
	entry, err := collectOneEntry(tx.Query(ctx, lockQuery, entryID, userID))
	if err != nil {
		return nil, err
	}

	text := t.Text
	entry.Transcript = &text
	entry.Sentiment = t.Sentiment
	entry.Emotions = t.Emotions
	entry.Language = t.Language
	entry.TranscribedAt = &at
	entry.LastUpdatedAt = at

	m := mapping.ToModelEntry(*entry)
	query := `
		UPDATE entries
		SET transcript = $1, sentiment_label = $2, sentiment_score = $3, emotions = $4, language = $5,
			transcribed_at = $6, last_updated_at = $7
		WHERE entry_id = $8 AND user_id = $9;
	`
	_, err = tx.Exec(ctx, query,
		m.Transcript,
		m.SentimentLabel,
		m.SentimentScore,
		m.Emotions,
		m.Language,
		m.TranscribedAt,
		m.LastUpdatedAt,
		entryID,
		userID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to attach transcript to entry "+entryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return entry, nil
}
