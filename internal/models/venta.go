package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta mirrors one row of the ventas table.
type Venta struct {
	ID         string
	Fecha      time.Time
	Total      decimal.Decimal
	MetodoPago string // CASH, TRANSFER or CARD
	CajaID     string
}

// VentaDetalle mirrors one row of the ventaDetalles table. ProductoID is nil
// when the referenced product has been deleted; NombreProducto keeps the
// snapshot taken at sale time.
type VentaDetalle struct {
	ID             string
	VentaID        string
	ProductoID     *string
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
