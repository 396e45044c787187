package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is one row of the derived daily-summary view. It is read-only
// aggregated data; nothing in the system writes it directly.
type DailySummary struct {
	Date               time.Time       `json:"date"`
	SaleCount          int64           `json:"saleCount"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`
	ItemsSold          int64           `json:"itemsSold"`
	AverageTicket      decimal.Decimal `json:"averageTicket"`
	BestSellingProduct *string         `json:"bestSellingProduct,omitempty"`
	CashIncome         decimal.Decimal `json:"cashIncome"`
	TransferIncome     decimal.Decimal `json:"transferIncome"`
	CardIncome         decimal.Decimal `json:"cardIncome"`
	MovementInflows    decimal.Decimal `json:"movementInflows"`
	MovementOutflows   decimal.Decimal `json:"movementOutflows"`
}
