package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Fully mutable: editing or deleting a product
// never touches past sales, which keep their own name/price snapshots.
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	ImageRef    string          `json:"imageRef"`
}
