package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	"github.com/carrocomidas/pos_backend/internal/models"
	"github.com/carrocomidas/pos_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface over the
// derived vista_resumen_diario view.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

const resumenColumns = `
	fecha, total_ventas, ingresos_totales, productos_vendidos, ticket_promedio,
	producto_mas_vendido, ingresos_efectivo, ingresos_transferencia,
	ingresos_debito, movimientos_ingresos, movimientos_egresos`

// GetDailySummaries retrieves every summary row, newest first.
func (r *reportingRepository) GetDailySummaries(ctx context.Context) ([]domain.DailySummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+resumenColumns+`
		FROM vista_resumen_diario
		ORDER BY fecha DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summaries: %w", err)
	}
	defer rows.Close()

	return collectResumenes(rows)
}

// GetDailySummaryByDate retrieves the summary for one calendar date.
func (r *reportingRepository) GetDailySummaryByDate(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+resumenColumns+`
		FROM vista_resumen_diario
		WHERE fecha = ?
		LIMIT 1;
	`, formatDate(date))

	resumen, err := scanResumen(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily summary for %s: %w", formatDate(date), err)
	}

	summary := mapping.ToDomainDailySummary(*resumen)
	return &summary, nil
}

// GetDailySummariesInRange retrieves summaries between from and to inclusive,
// newest first.
func (r *reportingRepository) GetDailySummariesInRange(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+resumenColumns+`
		FROM vista_resumen_diario
		WHERE fecha BETWEEN ? AND ?
		ORDER BY fecha DESC;
	`, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summaries in range: %w", err)
	}
	defer rows.Close()

	return collectResumenes(rows)
}

func collectResumenes(rows *sql.Rows) ([]domain.DailySummary, error) {
	resumenes := []models.ResumenDiario{}
	for rows.Next() {
		resumen, err := scanResumen(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summary row: %w", err)
		}
		resumenes = append(resumenes, *resumen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily summary rows: %w", err)
	}
	return mapping.ToDomainDailySummarySlice(resumenes), nil
}

// scanResumen reads one view row. The view aggregates with SQLite numeric
// affinity, so money columns arrive as floats; these are presentation-only
// figures, never fed back into ledger arithmetic.
func scanResumen(scan func(dest ...interface{}) error) (*models.ResumenDiario, error) {
	var (
		r           models.ResumenDiario
		fecha       string
		masVendido  sql.NullString
		ingresos    float64
		ticket      float64
		efectivo    float64
		transfer    float64
		debito      float64
		movIngresos float64
		movEgresos  float64
	)
	if err := scan(&fecha, &r.TotalVentas, &ingresos, &r.ProductosVendidos, &ticket,
		&masVendido, &efectivo, &transfer, &debito, &movIngresos, &movEgresos); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateOnlyFormat, fecha)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary date %q: %w", fecha, err)
	}
	r.Fecha = date

	if masVendido.Valid {
		r.ProductoMasVendido = &masVendido.String
	}

	r.IngresosTotales = decimal.NewFromFloat(ingresos)
	r.TicketPromedio = decimal.NewFromFloat(ticket)
	r.IngresosEfectivo = decimal.NewFromFloat(efectivo)
	r.IngresosTransferencia = decimal.NewFromFloat(transfer)
	r.IngresosDebito = decimal.NewFromFloat(debito)
	r.MovimientosIngresos = decimal.NewFromFloat(movIngresos)
	r.MovimientosEgresos = decimal.NewFromFloat(movEgresos)

	return &r, nil
}
