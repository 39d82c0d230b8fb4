package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes the pgx transaction of a repository so that an
// ownership check and the write it guards can share one transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is safe to defer after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
