package dto

import (
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale being recorded. Name and unit price
// are snapshotted as sent; ProductID is optional so free-form lines work.
type SaleItemRequest struct {
	ProductID *string         `json:"productID"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"gte=0"`
}

// RecordSaleRequest defines the input for recording a sale.
// OccurredAt defaults to the current time when omitted.
type RecordSaleRequest struct {
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER CARD"`
	OccurredAt    time.Time         `json:"occurredAt"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse defines the data returned for one sale line.
type SaleItemResponse struct {
	SaleItemID  string          `json:"saleItemID"`
	ProductID   *string         `json:"productID,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse defines the data returned for a sale with its lines.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	RegisterID    string             `json:"registerID"`
	OccurredAt    time.Time          `json:"occurredAt"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []SaleItemResponse `json:"items"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			SaleItemID:  it.SaleItemID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		RegisterID:    s.RegisterID,
		OccurredAt:    s.OccurredAt,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Items:         items,
	}
}

// ToSaleResponses converts a slice of domain.Sale to DTOs.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(&s)
	}
	return responses
}
