package repositories

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSalesByDate retrieves sales (with their line items populated) for
	// the given calendar date, ordered by timestamp descending.
	FindSalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error)

	// ListSalesHistory retrieves the most recent sales with their line items
	// using token-based pagination. It returns the sales, a token for the
	// next page (nil when exhausted), and an error.
	ListSalesHistory(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists the sale and all its line items as one transaction.
	// When cashMovement is non-nil (cash payment), the inflow movement is
	// written inside the same transaction: either everything commits or
	// nothing does. It verifies the owning register is still OPEN and fails
	// with apperrors.ErrNoOpenRegister otherwise.
	SaveSale(ctx context.Context, sale domain.Sale, cashMovement *domain.Movement) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
