package repositories

import (
	"context"
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterReader defines read operations for register data
type RegisterReader interface {
	// FindOpenRegister retrieves the single OPEN register. It returns
	// (nil, nil) when no register is open; absence is not an error.
	FindOpenRegister(ctx context.Context) (*domain.Register, error)

	// FindRegisterByID retrieves a register by its unique identifier.
	FindRegisterByID(ctx context.Context, registerID string) (*domain.Register, error)
}

// RegisterWriter defines write operations for register data
type RegisterWriter interface {
	// SaveRegister persists a new OPEN register. It fails with
	// apperrors.ErrConflict if another register is already open; the check
	// and the insert happen in one transaction, backed by a partial unique
	// index on the open status.
	SaveRegister(ctx context.Context, register domain.Register) error

	// CloseRegister transitions the given OPEN register to CLOSED, recording
	// the closing amount and timestamp. It fails with apperrors.ErrNotFound
	// when the register is not open. The transition is all-or-nothing.
	CloseRegister(ctx context.Context, registerID string, closingAmount decimal.Decimal, closedAt time.Time) error
}

// RegisterRepositoryFacade combines all register-related repository interfaces
type RegisterRepositoryFacade interface {
	RegisterReader
	RegisterWriter
}
