package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/carrocomidas/pos_backend/internal/middleware"
	"github.com/google/uuid"
)

// movementService handles manual cash movements against the open register.
type movementService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	registerRepo portsrepo.RegisterRepositoryFacade
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, registerRepo portsrepo.RegisterRepositoryFacade) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		registerRepo: registerRepo,
	}
}

// Ensure movementService implements the facade
var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// RecordMovement appends a movement to the currently open register.
func (s *movementService) RecordMovement(ctx context.Context, req dto.RecordMovementRequest) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movementType := domain.MovementType(req.Type)
	if movementType != domain.Inflow && movementType != domain.Outflow {
		return nil, fmt.Errorf("%w: invalid movement type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}

	open, err := s.registerRepo.FindOpenRegister(ctx)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: open a register before recording movements", apperrors.ErrNoOpenRegister)
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	movement := domain.Movement{
		MovementID: uuid.NewString(),
		RegisterID: open.RegisterID,
		Type:       movementType,
		Amount:     req.Amount,
		Reason:     req.Reason,
		OccurredAt: occurredAt,
	}

	// The repository re-checks the register inside the write transaction,
	// so a close racing this call cannot orphan the movement.
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Movement recorded",
		slog.String("movementID", movement.MovementID),
		slog.String("registerID", movement.RegisterID),
		slog.String("type", string(movement.Type)),
		slog.String("amount", movement.Amount.String()))
	return &movement, nil
}

// ListMovementsForRegister returns a register's movements, newest first.
func (s *movementService) ListMovementsForRegister(ctx context.Context, registerID string) ([]domain.Movement, error) {
	if _, err := s.registerRepo.FindRegisterByID(ctx, registerID); err != nil {
		return nil, err
	}
	return s.movementRepo.FindMovementsByRegisterID(ctx, registerID)
}

// ListMovementsForDate returns movements on a calendar date, newest first.
func (s *movementService) ListMovementsForDate(ctx context.Context, date time.Time) ([]domain.Movement, error) {
	return s.movementRepo.FindMovementsByDate(ctx, date)
}
