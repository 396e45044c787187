package services

import (
	"context"
	"fmt"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
)

// reportingService exposes the derived daily summaries.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the facade
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDailySummaries retrieves every summary row, newest first.
func (s *reportingService) GetDailySummaries(ctx context.Context) ([]domain.DailySummary, error) {
	return s.reportingRepo.GetDailySummaries(ctx)
}

// GetDailySummary retrieves the summary for one calendar date.
func (s *reportingService) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	return s.reportingRepo.GetDailySummaryByDate(ctx, date)
}

// GetSummariesInRange retrieves summaries between from and to, inclusive.
func (s *reportingService) GetSummariesInRange(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", apperrors.ErrValidation)
	}
	return s.reportingRepo.GetDailySummariesInRange(ctx, from, to)
}
