package mapping

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/models"
)

// ToModelMovimiento converts a domain Movement to its storage model.
func ToModelMovimiento(m domain.Movement) models.Movimiento {
	return models.Movimiento{
		ID:     m.MovementID,
		CajaID: m.RegisterID,
		Tipo:   string(m.Type),
		Monto:  m.Amount,
		Motivo: m.Reason,
		Fecha:  m.OccurredAt,
	}
}

// ToDomainMovement converts a storage model Movimiento to its domain form.
func ToDomainMovement(m models.Movimiento) domain.Movement {
	return domain.Movement{
		MovementID: m.ID,
		RegisterID: m.CajaID,
		Type:       domain.MovementType(m.Tipo),
		Amount:     m.Monto,
		Reason:     m.Motivo,
		OccurredAt: m.Fecha,
	}
}

// ToDomainMovementSlice converts a slice of storage models.
func ToDomainMovementSlice(ms []models.Movimiento) []domain.Movement {
	out := make([]domain.Movement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMovement(m)
	}
	return out
}
