package services

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/dto"
)

// MovementSvcFacade defines manual cash movement operations.
type MovementSvcFacade interface {
	// RecordMovement appends a movement to the currently open register.
	// Fails with apperrors.ErrNoOpenRegister when none is open.
	RecordMovement(ctx context.Context, req dto.RecordMovementRequest) (*domain.Movement, error)

	// ListMovementsForRegister returns a register's movements, newest first.
	ListMovementsForRegister(ctx context.Context, registerID string) ([]domain.Movement, error)

	// ListMovementsForDate returns movements on a calendar date, newest first.
	ListMovementsForDate(ctx context.Context, date time.Time) ([]domain.Movement, error)
}
