package repositories

import (
	"context"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// SearchProductsByName retrieves products whose name contains the term.
	SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct overwrites a product's mutable fields. Fails with
	// apperrors.ErrNotFound for an unknown ID.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product from the catalog. Past sale lines keep
	// their name snapshot; their product reference becomes NULL.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
