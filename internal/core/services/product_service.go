package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/carrocomidas/pos_backend/internal/middleware"
	"github.com/google/uuid"
)

// productService handles the product catalog.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

// Ensure productService implements the facade
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct adds a product to the catalog. Availability defaults to true
// when omitted.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   available,
		ImageRef:    req.ImageRef,
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		slog.String("productID", product.ProductID),
		slog.String("name", product.Name))
	return &product, nil
}

// GetProductByID retrieves a product by its ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves the whole catalog.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// SearchProducts retrieves products whose name contains the term.
func (s *productService) SearchProducts(ctx context.Context, name string) ([]domain.Product, error) {
	return s.productRepo.SearchProductsByName(ctx, name)
}

// UpdateProduct overwrites a product's mutable fields. Past sale lines are
// untouched; they carry their own snapshots.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	product := domain.Product{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		ImageRef:    req.ImageRef,
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product updated", slog.String("productID", productID))
	return &product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	logger.Info("Product deleted", slog.String("productID", productID))
	return nil
}
