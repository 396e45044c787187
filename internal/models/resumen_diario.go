package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenDiario mirrors one row of the vista_resumen_diario view.
type ResumenDiario struct {
	Fecha                 time.Time
	TotalVentas           int64
	IngresosTotales       decimal.Decimal
	ProductosVendidos     int64
	TicketPromedio        decimal.Decimal
	ProductoMasVendido    *string
	IngresosEfectivo      decimal.Decimal
	IngresosTransferencia decimal.Decimal
	IngresosDebito        decimal.Decimal
	MovimientosIngresos   decimal.Decimal
	MovimientosEgresos    decimal.Decimal
}
