package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates whether cash entered or left the drawer.
type MovementType string

const (
	Inflow  MovementType = "INFLOW"
	Outflow MovementType = "OUTFLOW"
)

// Movement is one manual cash inflow or outflow recorded against an open
// register. Movements are append-only: never updated, never deleted.
type Movement struct {
	MovementID string          `json:"movementID"`
	RegisterID string          `json:"registerID"`
	Type       MovementType    `json:"type"`
	Amount     decimal.Decimal `json:"amount"` // always positive, sign comes from Type
	Reason     string          `json:"reason"`
	OccurredAt time.Time       `json:"occurredAt"`
}
