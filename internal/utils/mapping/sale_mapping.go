package mapping

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/models"
)

// ToModelVenta converts a domain Sale (without items) to its storage model.
func ToModelVenta(s domain.Sale) models.Venta {
	return models.Venta{
		ID:         s.SaleID,
		Fecha:      s.OccurredAt,
		Total:      s.Total,
		MetodoPago: string(s.PaymentMethod),
		CajaID:     s.RegisterID,
	}
}

// ToModelVentaDetalle converts one domain SaleItem to its storage model.
func ToModelVentaDetalle(it domain.SaleItem) models.VentaDetalle {
	return models.VentaDetalle{
		ID:             it.SaleItemID,
		VentaID:        it.SaleID,
		ProductoID:     it.ProductID,
		NombreProducto: it.ProductName,
		Cantidad:       it.Quantity,
		PrecioUnitario: it.UnitPrice,
		Subtotal:       it.Subtotal,
	}
}

// ToDomainSale converts a storage Venta plus its detalles to a domain Sale.
func ToDomainSale(v models.Venta, detalles []models.VentaDetalle) domain.Sale {
	items := make([]domain.SaleItem, len(detalles))
	for i, d := range detalles {
		items[i] = domain.SaleItem{
			SaleItemID:  d.ID,
			SaleID:      d.VentaID,
			ProductID:   d.ProductoID,
			ProductName: d.NombreProducto,
			Quantity:    d.Cantidad,
			UnitPrice:   d.PrecioUnitario,
			Subtotal:    d.Subtotal,
		}
	}
	return domain.Sale{
		SaleID:        v.ID,
		RegisterID:    v.CajaID,
		OccurredAt:    v.Fecha,
		Total:         v.Total,
		PaymentMethod: domain.PaymentMethod(v.MetodoPago),
		Items:         items,
	}
}
