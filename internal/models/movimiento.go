package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movimiento mirrors one row of the movimientos table.
type Movimiento struct {
	ID     string
	CajaID string
	Tipo   string // INFLOW or OUTFLOW
	Monto  decimal.Decimal
	Motivo string
	Fecha  time.Time
}
