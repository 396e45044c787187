package services

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/dto"
)

// SaleSvcFacade defines sale recording and lookup operations.
type SaleSvcFacade interface {
	// RecordSale computes subtotals and total, persists the sale with all
	// line items atomically and, for cash payments, the matching inflow
	// movement in the same transaction. Fails with
	// apperrors.ErrNoOpenRegister when no register is open.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Sale, error)

	// ListSalesForDate returns sales with line items for a calendar date,
	// newest first.
	ListSalesForDate(ctx context.Context, date time.Time) ([]domain.Sale, error)

	// ListSalesHistory returns the most recent sales with line items.
	// limit <= 0 falls back to the default of 100.
	ListSalesHistory(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}
