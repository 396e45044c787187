package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterStatus indicates the state of a cash register session.
type RegisterStatus string

const (
	RegisterOpen   RegisterStatus = "OPEN"
	RegisterClosed RegisterStatus = "CLOSED"
)

// Register represents one cash-drawer session, bounded by an open and a close
// event. At most one register is OPEN at any time; a closed register never
// reopens.
type Register struct {
	RegisterID    string          `json:"registerID"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	ClosingAmount *decimal.Decimal `json:"closingAmount,omitempty"` // nil until closed
	OpenedAt      time.Time       `json:"openedAt"`
	ClosedAt      *time.Time      `json:"closedAt,omitempty"` // nil until closed
	Status        RegisterStatus  `json:"status"`
}

// RegisterCloseSummary reports the outcome of closing a register. Difference
// is counted minus expected: negative means a shortfall (faltante), positive
// a surplus.
type RegisterCloseSummary struct {
	Register     Register        `json:"register"`
	ExpectedCash decimal.Decimal `json:"expectedCash"`
	CountedCash  decimal.Decimal `json:"countedCash"`
	Difference   decimal.Decimal `json:"difference"`
}
