package mapping

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/models"
)

// ToModelCaja converts a domain Register to its storage model.
func ToModelCaja(r domain.Register) models.Caja {
	return models.Caja{
		ID:            r.RegisterID,
		FechaApertura: r.OpenedAt,
		FechaCierre:   r.ClosedAt,
		MontoInicial:  r.OpeningAmount,
		MontoFinal:    r.ClosingAmount,
		Estado:        string(r.Status),
	}
}

// ToDomainRegister converts a storage model Caja to its domain form.
func ToDomainRegister(c models.Caja) domain.Register {
	return domain.Register{
		RegisterID:    c.ID,
		OpeningAmount: c.MontoInicial,
		ClosingAmount: c.MontoFinal,
		OpenedAt:      c.FechaApertura,
		ClosedAt:      c.FechaCierre,
		Status:        domain.RegisterStatus(c.Estado),
	}
}
