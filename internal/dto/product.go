package dto

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the input for creating a catalog product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Category    string          `json:"category" binding:"required"`
	Available   *bool           `json:"available"` // defaults to true
	ImageRef    string          `json:"imageRef"`
}

// UpdateProductRequest defines the input for overwriting a product.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Category    string          `json:"category" binding:"required"`
	Available   bool            `json:"available"`
	ImageRef    string          `json:"imageRef"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	ImageRef    string          `json:"imageRef"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Available:   p.Available,
		ImageRef:    p.ImageRef,
	}
}

// ToProductResponses converts a slice of domain.Product to DTOs.
func ToProductResponses(ps []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToProductResponse(&p)
	}
	return responses
}
