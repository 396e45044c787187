package repositories

import (
	"context"
	"database/sql"
)

// TransactionManager defines the interface for repositories that manage
// database transactions themselves.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (*sql.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx *sql.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx *sql.Tx) error
}
