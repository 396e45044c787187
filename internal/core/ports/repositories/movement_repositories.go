package repositories

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
)

// MovementReader defines read operations for cash movement data
type MovementReader interface {
	// FindMovementsByRegisterID retrieves all movements for a register,
	// ordered by timestamp descending.
	FindMovementsByRegisterID(ctx context.Context, registerID string) ([]domain.Movement, error)

	// FindMovementsByDate retrieves all movements on the given calendar date,
	// ordered by timestamp descending.
	FindMovementsByDate(ctx context.Context, date time.Time) ([]domain.Movement, error)
}

// MovementWriter defines write operations for cash movement data.
// The ledger is append-only: there is no update or delete.
type MovementWriter interface {
	// SaveMovement persists a movement scoped to its register. It verifies
	// inside the same transaction that the register is still OPEN and fails
	// with apperrors.ErrNoOpenRegister otherwise.
	SaveMovement(ctx context.Context, movement domain.Movement) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
