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
)

type SQLiteMovementRepository struct {
	BaseRepository
}

// newSQLiteMovementRepository creates a new repository for cash movement data.
func newSQLiteMovementRepository(db *sql.DB) portsrepo.MovementRepositoryFacade {
	return &SQLiteMovementRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure SQLiteMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*SQLiteMovementRepository)(nil)

// SaveMovement appends a movement. The owning register must still be OPEN;
// the check and the insert share one transaction so the answer cannot change
// underneath the write.
func (r *SQLiteMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if err := checkRegisterOpen(ctx, tx, movement.RegisterID); err != nil {
		return err
	}

	m := mapping.ToModelMovimiento(movement)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO movimientos (id, cajaId, tipo, monto, motivo, fecha)
		VALUES (?, ?, ?, ?, ?, ?);
	`, m.ID, m.CajaID, m.Tipo, m.Monto.String(), m.Motivo, formatTime(m.Fecha))
	if err != nil {
		return fmt.Errorf("failed to insert movement %s: %w", m.ID, err)
	}

	return r.Commit(ctx, tx)
}

// FindMovementsByRegisterID retrieves all movements for a register, newest first.
func (r *SQLiteMovementRepository) FindMovementsByRegisterID(ctx context.Context, registerID string) ([]domain.Movement, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, cajaId, tipo, monto, motivo, fecha
		FROM movimientos
		WHERE cajaId = ?
		ORDER BY fecha DESC;
	`, registerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for register %s: %w", registerID, err)
	}
	defer rows.Close()

	return collectMovements(rows)
}

// FindMovementsByDate retrieves movements on a calendar date, newest first.
func (r *SQLiteMovementRepository) FindMovementsByDate(ctx context.Context, date time.Time) ([]domain.Movement, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, cajaId, tipo, monto, motivo, fecha
		FROM movimientos
		WHERE date(fecha) = ?
		ORDER BY fecha DESC;
	`, formatDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for date %s: %w", formatDate(date), err)
	}
	defer rows.Close()

	return collectMovements(rows)
}

func collectMovements(rows *sql.Rows) ([]domain.Movement, error) {
	movimientos := []models.Movimiento{}
	for rows.Next() {
		var (
			m     models.Movimiento
			monto string
			fecha string
		)
		if err := rows.Scan(&m.ID, &m.CajaID, &m.Tipo, &monto, &m.Motivo, &fecha); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}

		amount, err := parseDecimal(monto)
		if err != nil {
			return nil, err
		}
		m.Monto = amount

		occurredAt, err := parseTime(fecha)
		if err != nil {
			return nil, err
		}
		m.Fecha = occurredAt

		movimientos = append(movimientos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	return mapping.ToDomainMovementSlice(movimientos), nil
}

// checkRegisterOpen verifies inside tx that the given register is still OPEN.
func checkRegisterOpen(ctx context.Context, tx *sql.Tx, registerID string) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM cajas WHERE id = ? AND estado = ?;`,
		registerID, models.EstadoAbierta).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: register %s is not open", apperrors.ErrNoOpenRegister, registerID)
	}
	if err != nil {
		return fmt.Errorf("failed to verify register %s is open: %w", registerID, err)
	}
	return nil
}
