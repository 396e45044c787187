package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// sqliteTimeFormat is how timestamps are stored in TEXT columns. The
// fractional second is zero-padded to fixed width; variable-width fractions
// (RFC3339Nano trims trailing zeros) would make lexical order diverge from
// chronological order, breaking ORDER BY and the pagination cursor on raw
// TEXT comparison.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// dateOnlyFormat matches SQLite's date() output.
const dateOnlyFormat = "2006-01-02"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ensure BaseRepository implements portsrepo.TransactionManager
var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeFormat)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeFormat, s)
	if err != nil {
		// Rows written by SQLite defaults use date-only or second precision;
		// RFC3339Nano covers values with trimmed fractions.
		for _, layout := range []string{time.RFC3339Nano, dateOnlyFormat, "2006-01-02 15:04:05"} {
			if t, err2 := time.Parse(layout, s); err2 == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("failed to parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateOnlyFormat)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse stored amount %q: %w", s, err)
	}
	return d, nil
}

// isUniqueViolation reports whether err comes from a UNIQUE constraint,
// e.g. the partial index guarding the single open register.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
