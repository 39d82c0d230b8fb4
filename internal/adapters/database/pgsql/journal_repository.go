package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/voice_journal_app/internal/models"
	"github.com/SscSPs/voice_journal_app/internal/utils/mapping"
	"github.com/SscSPs/voice_journal_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalColumns = `journal_id, user_id, title, content, is_private, created_at, last_updated_at`

const journalSummarySelect = `
	SELECT j.journal_id, j.user_id, j.title, j.content, j.is_private, j.created_at, j.last_updated_at,
		COUNT(e.entry_id) AS entry_count
	FROM journals j
	LEFT JOIN entries e ON e.journal_id = j.journal_id
`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JournalID,
		m.UserID,
		m.Title,
		m.Content,
		m.IsPrivate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByIDForUser(ctx context.Context, journalID, userID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 AND user_id = $2;`
	rows, err := r.Pool.Query(ctx, query, journalID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal", err)
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

func (r *PgxJournalRepository) ListJournalSummaries(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.JournalSummary, *string, error) {
	args := []any{userID}
	where := `WHERE j.user_id = $1`
	if nextToken != nil && *nextToken != "" {
		createdAt, journalID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		where += ` AND (j.created_at, j.journal_id) < ($2, $3)`
		args = append(args, createdAt, journalID)
	}
	// One extra row tells us whether another page exists.
	args = append(args, limit+1)
	query := journalSummarySelect + where + fmt.Sprintf(`
		GROUP BY j.journal_id
		ORDER BY j.created_at DESC, j.journal_id DESC
		LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalSummary])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan journals", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.JournalID)
		next = &token
	}
	return mapping.ToDomainJournalSummarySlice(ms), next, nil
}

func (r *PgxJournalRepository) ListAllJournalSummaries(ctx context.Context, userID string) ([]domain.JournalSummary, error) {
	query := journalSummarySelect + `
		WHERE j.user_id = $1
		GROUP BY j.journal_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list journal summaries", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalSummary])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal summaries", err)
	}
	return mapping.ToDomainJournalSummarySlice(ms), nil
}

// lockJournalForUser selects the journal FOR UPDATE inside tx, failing with ErrNotFound
// when it does not exist or belongs to someone else.
func lockJournalForUser(ctx context.Context, tx pgx.Tx, journalID, userID string) (models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 AND user_id = $2 FOR UPDATE;`
	rows, err := tx.Query(ctx, query, journalID, userID)
	if err != nil {
		return models.Journal{}, apperrors.NewAppError(500, "failed to lock journal", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Journal{}, apperrors.ErrNotFound
		}
		return models.Journal{}, apperrors.NewAppError(500, "failed to scan locked journal", err)
	}
	return m, nil
}

func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, userID, journalID string, upd domain.JournalUpdate) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m, err := lockJournalForUser(ctx, tx, journalID, userID)
	if err != nil {
		return nil, err
	}

	journal := mapping.ToDomainJournal(m)
	if upd.Title != nil {
		journal.Title = *upd.Title
	}
	if upd.Content != nil {
		journal.Content = upd.Content
	}
	journal.LastUpdatedAt = upd.UpdatedAt

	query := `
		UPDATE journals
		SET title = $1, content = $2, last_updated_at = $3
		WHERE journal_id = $4 AND user_id = $5;
	`
	if _, err := tx.Exec(ctx, query, journal.Title, journal.Content, journal.LastUpdatedAt, journalID, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update journal "+journalID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, userID, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if _, err := lockJournalForUser(ctx, tx, journalID, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE journal_id = $1;`, journalID); err != nil {
		return apperrors.NewAppError(500, "failed to delete entries of journal "+journalID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1 AND user_id = $2;`, journalID, userID); err != nil {
		return apperrors.NewAppError(500, "failed to delete journal "+journalID, err)
	}

	return r.Commit(ctx, tx)
}
