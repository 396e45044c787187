package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/carrocomidas/pos_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// cashSaleReason labels the automatic inflow written alongside a cash sale.
const cashSaleReason = "sale"

// saleService handles atomic sale recording and lookups.
type saleService struct {
	saleRepo     portsrepo.SaleRepositoryFacade
	registerRepo portsrepo.RegisterRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, registerRepo portsrepo.RegisterRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:     saleRepo,
		registerRepo: registerRepo,
	}
}

// Ensure saleService implements the facade
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale computes line subtotals and the sale total with exact decimal
// arithmetic, then persists the sale, its items and, for cash payments, the
// matching drawer inflow in one transaction.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	paymentMethod := domain.PaymentMethod(req.PaymentMethod)
	switch paymentMethod {
	case domain.Cash, domain.Transfer, domain.Card:
	default:
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}

	open, err := s.registerRepo.FindOpenRegister(ctx)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: open a register before recording sales", apperrors.ErrNoOpenRegister)
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	saleID := uuid.NewString()
	items := make([]domain.SaleItem, 0, len(req.Items))
	total := decimal.Zero
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %q", apperrors.ErrValidation, line.Name)
		}
		if line.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative for item %q", apperrors.ErrValidation, line.Name)
		}

		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, domain.SaleItem{
			SaleItemID:  uuid.NewString(),
			SaleID:      saleID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	sale := domain.Sale{
		SaleID:        saleID,
		RegisterID:    open.RegisterID,
		OccurredAt:    occurredAt,
		Total:         total,
		PaymentMethod: paymentMethod,
		Items:         items,
	}

	// Cash lands in the drawer, so the sale carries its own inflow; the
	// repository writes both inside one transaction.
	var cashMovement *domain.Movement
	if paymentMethod == domain.Cash {
		cashMovement = &domain.Movement{
			MovementID: uuid.NewString(),
			RegisterID: open.RegisterID,
			Type:       domain.Inflow,
			Amount:     total,
			Reason:     cashSaleReason,
			OccurredAt: occurredAt,
		}
	}

	if err := s.saleRepo.SaveSale(ctx, sale, cashMovement); err != nil {
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("saleID", sale.SaleID),
		slog.String("registerID", sale.RegisterID),
		slog.String("total", sale.Total.String()),
		slog.String("paymentMethod", string(sale.PaymentMethod)),
		slog.Int("items", len(sale.Items)))
	return &sale, nil
}

// ListSalesForDate returns sales with their line items for a calendar date.
func (s *saleService) ListSalesForDate(ctx context.Context, date time.Time) ([]domain.Sale, error) {
	return s.saleRepo.FindSalesByDate(ctx, date)
}

// ListSalesHistory returns the most recent sales page by page.
func (s *saleService) ListSalesHistory(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	return s.saleRepo.ListSalesHistory(ctx, limit, nextToken)
}
