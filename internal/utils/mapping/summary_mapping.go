package mapping

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/models"
)

// ToDomainDailySummary converts a view row to its domain form.
func ToDomainDailySummary(r models.ResumenDiario) domain.DailySummary {
	return domain.DailySummary{
		Date:               r.Fecha,
		SaleCount:          r.TotalVentas,
		GrossIncome:        r.IngresosTotales,
		ItemsSold:          r.ProductosVendidos,
		AverageTicket:      r.TicketPromedio,
		BestSellingProduct: r.ProductoMasVendido,
		CashIncome:         r.IngresosEfectivo,
		TransferIncome:     r.IngresosTransferencia,
		CardIncome:         r.IngresosDebito,
		MovementInflows:    r.MovimientosIngresos,
		MovementOutflows:   r.MovimientosEgresos,
	}
}

// ToDomainDailySummarySlice converts a slice of view rows.
func ToDomainDailySummarySlice(rows []models.ResumenDiario) []domain.DailySummary {
	out := make([]domain.DailySummary, len(rows))
	for i, r := range rows {
		out[i] = ToDomainDailySummary(r)
	}
	return out
}
