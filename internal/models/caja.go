package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoCaja values stored in cajas.estado.
const (
	EstadoAbierta = "OPEN"
	EstadoCerrada = "CLOSED"
)

// Caja mirrors one row of the cajas table.
type Caja struct {
	ID            string
	FechaApertura time.Time
	FechaCierre   *time.Time
	MontoInicial  decimal.Decimal
	MontoFinal    *decimal.Decimal
	Estado        string
}
