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

type SQLiteRegisterRepository struct {
	BaseRepository
}

// newSQLiteRegisterRepository creates a new repository for register (caja) data.
func newSQLiteRegisterRepository(db *sql.DB) portsrepo.RegisterRepositoryFacade {
	return &SQLiteRegisterRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure SQLiteRegisterRepository implements portsrepo.RegisterRepositoryFacade
var _ portsrepo.RegisterRepositoryFacade = (*SQLiteRegisterRepository)(nil)

// SaveRegister inserts a new OPEN register. The open-check and the insert run
// in one transaction; the partial unique index on estado='OPEN' backs the
// check against any writer this transaction cannot see.
func (r *SQLiteRegisterRepository) SaveRegister(ctx context.Context, register domain.Register) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	var openID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM cajas WHERE estado = ? LIMIT 1;`, models.EstadoAbierta).Scan(&openID)
	if err == nil {
		return fmt.Errorf("%w: register %s is already open", apperrors.ErrConflict, openID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check for open register: %w", err)
	}

	caja := mapping.ToModelCaja(register)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO cajas (id, fechaApertura, fechaCierre, montoInicial, montoFinal, estado)
		VALUES (?, ?, NULL, ?, NULL, ?);
	`, caja.ID, formatTime(caja.FechaApertura), caja.MontoInicial.String(), caja.Estado)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a register is already open", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert register %s: %w", caja.ID, err)
	}

	return r.Commit(ctx, tx)
}

// CloseRegister transitions an OPEN register to CLOSED in a single statement,
// so the transition is all-or-nothing by construction.
func (r *SQLiteRegisterRepository) CloseRegister(ctx context.Context, registerID string, closingAmount decimal.Decimal, closedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE cajas
		SET montoFinal = ?, fechaCierre = ?, estado = ?
		WHERE id = ? AND estado = ?;
	`, closingAmount.String(), formatTime(closedAt), models.EstadoCerrada, registerID, models.EstadoAbierta)
	if err != nil {
		return fmt.Errorf("failed to close register %s: %w", registerID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read close result for register %s: %w", registerID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: register %s is not open", apperrors.ErrNotFound, registerID)
	}
	return nil
}

// FindOpenRegister retrieves the single OPEN register, or (nil, nil) when
// none is open.
func (r *SQLiteRegisterRepository) FindOpenRegister(ctx context.Context) (*domain.Register, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, fechaApertura, fechaCierre, montoInicial, montoFinal, estado
		FROM cajas
		WHERE estado = ?
		LIMIT 1;
	`, models.EstadoAbierta)

	caja, err := scanCaja(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open register: %w", err)
	}

	register := mapping.ToDomainRegister(*caja)
	return &register, nil
}

// FindRegisterByID retrieves a register by its ID.
func (r *SQLiteRegisterRepository) FindRegisterByID(ctx context.Context, registerID string) (*domain.Register, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, fechaApertura, fechaCierre, montoInicial, montoFinal, estado
		FROM cajas
		WHERE id = ?;
	`, registerID)

	caja, err := scanCaja(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find register by ID %s: %w", registerID, err)
	}

	register := mapping.ToDomainRegister(*caja)
	return &register, nil
}

// scanCaja reads one cajas row, translating the TEXT timestamp/amount columns.
func scanCaja(row *sql.Row) (*models.Caja, error) {
	var (
		caja         models.Caja
		apertura     string
		cierre       sql.NullString
		montoInicial string
		montoFinal   sql.NullString
	)
	if err := row.Scan(&caja.ID, &apertura, &cierre, &montoInicial, &montoFinal, &caja.Estado); err != nil {
		return nil, err
	}

	openedAt, err := parseTime(apertura)
	if err != nil {
		return nil, err
	}
	caja.FechaApertura = openedAt

	if cierre.Valid {
		closedAt, err := parseTime(cierre.String)
		if err != nil {
			return nil, err
		}
		caja.FechaCierre = &closedAt
	}

	opening, err := parseDecimal(montoInicial)
	if err != nil {
		return nil, err
	}
	caja.MontoInicial = opening

	if montoFinal.Valid {
		closing, err := parseDecimal(montoFinal.String)
		if err != nil {
			return nil, err
		}
		caja.MontoFinal = &closing
	}

	return &caja, nil
}
