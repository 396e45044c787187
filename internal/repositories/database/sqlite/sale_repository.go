package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	"github.com/carrocomidas/pos_backend/internal/models"
	"github.com/carrocomidas/pos_backend/internal/utils/mapping"
	"github.com/carrocomidas/pos_backend/internal/utils/pagination"
)

type SQLiteSaleRepository struct {
	BaseRepository
}

// newSQLiteSaleRepository creates a new repository for sale and line item data.
func newSQLiteSaleRepository(db *sql.DB) portsrepo.SaleRepositoryFacade {
	return &SQLiteSaleRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure SQLiteSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*SQLiteSaleRepository)(nil)

// SaveSale persists the sale, all its line items and, for cash payments, the
// matching inflow movement in one transaction. A failure anywhere leaves no
// partial sale and no orphaned movement behind.
func (r *SQLiteSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, cashMovement *domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if err := checkRegisterOpen(ctx, tx, sale.RegisterID); err != nil {
		return err
	}

	venta := mapping.ToModelVenta(sale)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO ventas (id, fecha, total, metodoPago, cajaId)
		VALUES (?, ?, ?, ?, ?);
	`, venta.ID, formatTime(venta.Fecha), venta.Total.String(), venta.MetodoPago, venta.CajaID)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", venta.ID, err)
	}

	for _, item := range sale.Items {
		detalle := mapping.ToModelVentaDetalle(item)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO ventaDetalles (id, ventaId, productoId, nombreProducto, cantidad, precioUnitario, subtotal)
			VALUES (?, ?, ?, ?, ?, ?, ?);
		`, detalle.ID, detalle.VentaID, detalle.ProductoID, detalle.NombreProducto,
			detalle.Cantidad, detalle.PrecioUnitario.String(), detalle.Subtotal.String())
		if err != nil {
			return fmt.Errorf("failed to insert line item %s for sale %s: %w", detalle.ID, venta.ID, err)
		}
	}

	if cashMovement != nil {
		m := mapping.ToModelMovimiento(*cashMovement)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO movimientos (id, cajaId, tipo, monto, motivo, fecha)
			VALUES (?, ?, ?, ?, ?, ?);
		`, m.ID, m.CajaID, m.Tipo, m.Monto.String(), m.Motivo, formatTime(m.Fecha))
		if err != nil {
			return fmt.Errorf("failed to insert cash movement for sale %s: %w", venta.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindSalesByDate retrieves sales with their line items for a calendar date,
// newest first.
func (r *SQLiteSaleRepository) FindSalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, fecha, total, metodoPago, cajaId
		FROM ventas
		WHERE date(fecha) = ?
		ORDER BY fecha DESC;
	`, formatDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for date %s: %w", formatDate(date), err)
	}
	defer rows.Close()

	ventas, err := collectVentas(rows)
	if err != nil {
		return nil, err
	}

	return r.attachDetalles(ctx, ventas)
}

// ListSalesHistory retrieves the most recent sales with line items using a
// (fecha, id) cursor. It fetches one extra row to decide whether a next page
// exists.
func (r *SQLiteSaleRepository) ListSalesHistory(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 100
	}
	fetchLimit := limit + 1

	var (
		rows *sql.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		lastAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token: %v", apperrors.ErrValidation, decodeErr)
		}
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, fecha, total, metodoPago, cajaId
			FROM ventas
			WHERE fecha < ? OR (fecha = ? AND id < ?)
			ORDER BY fecha DESC, id DESC
			LIMIT ?;
		`, formatTime(lastAt), formatTime(lastAt), lastID, fetchLimit)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, fecha, total, metodoPago, cajaId
			FROM ventas
			ORDER BY fecha DESC, id DESC
			LIMIT ?;
		`, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	ventas, err := collectVentas(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(ventas) == fetchLimit {
		ventas = ventas[:limit]
		last := ventas[len(ventas)-1]
		t := pagination.EncodeToken(last.Fecha, last.ID)
		token = &t
	}

	sales, err := r.attachDetalles(ctx, ventas)
	if err != nil {
		return nil, nil, err
	}
	return sales, token, nil
}

func collectVentas(rows *sql.Rows) ([]models.Venta, error) {
	ventas := []models.Venta{}
	for rows.Next() {
		var (
			v     models.Venta
			fecha string
			total string
		)
		if err := rows.Scan(&v.ID, &fecha, &total, &v.MetodoPago, &v.CajaID); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}

		occurredAt, err := parseTime(fecha)
		if err != nil {
			return nil, err
		}
		v.Fecha = occurredAt

		amount, err := parseDecimal(total)
		if err != nil {
			return nil, err
		}
		v.Total = amount

		ventas = append(ventas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return ventas, nil
}

// attachDetalles loads line items for the given sales in one query and
// assembles the domain sales in input order.
func (r *SQLiteSaleRepository) attachDetalles(ctx context.Context, ventas []models.Venta) ([]domain.Sale, error) {
	if len(ventas) == 0 {
		return []domain.Sale{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ventas)), ",")
	args := make([]interface{}, len(ventas))
	for i, v := range ventas {
		args[i] = v.ID
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, ventaId, productoId, nombreProducto, cantidad, precioUnitario, subtotal
		FROM ventaDetalles
		WHERE ventaId IN (`+placeholders+`);
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	detallesByVenta := make(map[string][]models.VentaDetalle, len(ventas))
	for rows.Next() {
		var (
			d              models.VentaDetalle
			productoID     sql.NullString
			precioUnitario string
			subtotal       string
		)
		if err := rows.Scan(&d.ID, &d.VentaID, &productoID, &d.NombreProducto, &d.Cantidad, &precioUnitario, &subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		if productoID.Valid {
			d.ProductoID = &productoID.String
		}

		unit, err := parseDecimal(precioUnitario)
		if err != nil {
			return nil, err
		}
		d.PrecioUnitario = unit

		sub, err := parseDecimal(subtotal)
		if err != nil {
			return nil, err
		}
		d.Subtotal = sub

		detallesByVenta[d.VentaID] = append(detallesByVenta[d.VentaID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}

	sales := make([]domain.Sale, len(ventas))
	for i, v := range ventas {
		sales[i] = mapping.ToDomainSale(v, detallesByVenta[v.ID])
	}
	return sales, nil
}
