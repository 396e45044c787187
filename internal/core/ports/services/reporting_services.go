package services

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only daily summary operations.
type ReportingSvcFacade interface {
	GetDailySummaries(ctx context.Context) ([]domain.DailySummary, error)
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error)
	GetSummariesInRange(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error)
}
