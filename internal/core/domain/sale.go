package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer paid for a sale.
type PaymentMethod string

const (
	Cash     PaymentMethod = "CASH"
	Transfer PaymentMethod = "TRANSFER"
	Card     PaymentMethod = "CARD"
)

// SaleItem is one product-quantity-price line within a sale. The product name
// is snapshotted so the line survives later catalog edits or deletions.
type SaleItem struct {
	SaleItemID  string          `json:"saleItemID"`
	SaleID      string          `json:"saleID"`
	ProductID   *string         `json:"productID,omitempty"` // nil once the product is deleted
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"` // Quantity * UnitPrice, exact
}

// Sale is a completed transaction with one or more line items. Sales and
// their items are created atomically and never modified afterwards.
type Sale struct {
	SaleID        string          `json:"saleID"`
	RegisterID    string          `json:"registerID"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Total         decimal.Decimal `json:"total"` // sum of item subtotals, exact
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
}
