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
	"github.com/carrocomidas/pos_backend/internal/utils/cashbox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// registerService handles the register (caja) lifecycle.
type registerService struct {
	registerRepo portsrepo.RegisterRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
}

// NewRegisterService creates a new register service.
func NewRegisterService(registerRepo portsrepo.RegisterRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade) portssvc.RegisterSvcFacade {
	return &registerService{
		registerRepo: registerRepo,
		movementRepo: movementRepo,
	}
}

// Ensure registerService implements the facade
var _ portssvc.RegisterSvcFacade = (*registerService)(nil)

// OpenRegister creates a new OPEN register with the given opening float.
// The storage layer rejects it with apperrors.ErrConflict while another
// register is open.
func (s *registerService) OpenRegister(ctx context.Context, req dto.OpenRegisterRequest) (*domain.Register, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount cannot be negative", apperrors.ErrValidation)
	}

	openedAt := req.OpenedAt
	if openedAt.IsZero() {
		openedAt = time.Now().UTC()
	}

	register := domain.Register{
		RegisterID:    uuid.NewString(),
		OpeningAmount: req.OpeningAmount,
		OpenedAt:      openedAt,
		Status:        domain.RegisterOpen,
	}

	if err := s.registerRepo.SaveRegister(ctx, register); err != nil {
		return nil, err
	}

	logger.Info("Register opened",
		slog.String("registerID", register.RegisterID),
		slog.String("openingAmount", register.OpeningAmount.String()))
	return &register, nil
}

// CloseRegister transitions the open register to CLOSED. It computes the
// expected cash (opening + inflows - outflows) before the transition so the
// summary reports the drawer difference against the counted amount.
func (s *registerService) CloseRegister(ctx context.Context, req dto.CloseRegisterRequest) (*domain.RegisterCloseSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ClosingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: closing amount cannot be negative", apperrors.ErrValidation)
	}

	open, err := s.registerRepo.FindOpenRegister(ctx)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: no open register to close", apperrors.ErrNotFound)
	}

	movements, err := s.movementRepo.FindMovementsByRegisterID(ctx, open.RegisterID)
	if err != nil {
		return nil, err
	}

	expected, err := cashbox.ExpectedCash(open.OpeningAmount, movements)
	if err != nil {
		return nil, err
	}

	closedAt := req.ClosedAt
	if closedAt.IsZero() {
		closedAt = time.Now().UTC()
	}

	if err := s.registerRepo.CloseRegister(ctx, open.RegisterID, req.ClosingAmount, closedAt); err != nil {
		return nil, err
	}

	closed := *open
	closed.Status = domain.RegisterClosed
	closingAmount := req.ClosingAmount
	closed.ClosingAmount = &closingAmount
	closed.ClosedAt = &closedAt

	summary := domain.RegisterCloseSummary{
		Register:     closed,
		ExpectedCash: expected,
		CountedCash:  req.ClosingAmount,
		Difference:   req.ClosingAmount.Sub(expected),
	}

	logger.Info("Register closed",
		slog.String("registerID", closed.RegisterID),
		slog.String("expectedCash", summary.ExpectedCash.String()),
		slog.String("countedCash", summary.CountedCash.String()),
		slog.String("difference", summary.Difference.String()))
	return &summary, nil
}

// GetOpenRegister returns the open register, or (nil, nil) when none is open.
func (s *registerService) GetOpenRegister(ctx context.Context) (*domain.Register, error) {
	return s.registerRepo.FindOpenRegister(ctx)
}

// IsRegisterOpen reports whether a register is currently open.
func (s *registerService) IsRegisterOpen(ctx context.Context) (bool, error) {
	open, err := s.registerRepo.FindOpenRegister(ctx)
	if err != nil {
		return false, err
	}
	return open != nil, nil
}

// GetRegisterBalance computes the expected cash for a register from its
// opening amount and recorded movements.
func (s *registerService) GetRegisterBalance(ctx context.Context, registerID string) (decimal.Decimal, error) {
	register, err := s.registerRepo.FindRegisterByID(ctx, registerID)
	if err != nil {
		return decimal.Zero, err
	}

	movements, err := s.movementRepo.FindMovementsByRegisterID(ctx, registerID)
	if err != nil {
		return decimal.Zero, err
	}

	return cashbox.ExpectedCash(register.OpeningAmount, movements)
}
