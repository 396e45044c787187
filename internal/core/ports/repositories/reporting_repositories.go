package repositories

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
)

// ReportingRepository defines read-only access to the derived daily-summary
// view. Summaries are aggregation over persisted sales/movements; nothing
// writes them.
type ReportingRepository interface {
	// GetDailySummaries retrieves every summary row, newest first.
	GetDailySummaries(ctx context.Context) ([]domain.DailySummary, error)

	// GetDailySummaryByDate retrieves the summary for one calendar date.
	// Fails with apperrors.ErrNotFound when no sales exist for that date.
	GetDailySummaryByDate(ctx context.Context, date time.Time) (*domain.DailySummary, error)

	// GetDailySummariesInRange retrieves summaries between from and to
	// (inclusive), newest first.
	GetDailySummariesInRange(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error)
}
