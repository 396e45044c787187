package services

import (
	"context"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// RegisterSvcFacade defines the register (caja) lifecycle operations.
type RegisterSvcFacade interface {
	// OpenRegister creates a new OPEN register. Fails with
	// apperrors.ErrConflict while another register is open.
	OpenRegister(ctx context.Context, req dto.OpenRegisterRequest) (*domain.Register, error)

	// CloseRegister transitions the open register to CLOSED and reports the
	// expected-cash audit figures. Fails with apperrors.ErrNotFound when no
	// register is open.
	CloseRegister(ctx context.Context, req dto.CloseRegisterRequest) (*domain.RegisterCloseSummary, error)

	// GetOpenRegister returns the open register, or (nil, nil) when none.
	GetOpenRegister(ctx context.Context) (*domain.Register, error)

	// IsRegisterOpen reports whether a register is currently open.
	IsRegisterOpen(ctx context.Context) (bool, error)

	// GetRegisterBalance computes expected cash for a register:
	// opening amount + inflows - outflows.
	GetRegisterBalance(ctx context.Context, registerID string) (decimal.Decimal, error)
}
